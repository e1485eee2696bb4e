package repositories

import (
	"context"

	"github.com/google/uuid"
	"team-mentorship.backend/internal/domain/entities"
)

type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
	CountByRole(ctx context.Context, role entities.UserRole) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type StudentProfileRepository interface {
	Upsert(ctx context.Context, profile *entities.StudentProfile) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.StudentProfile, error)
	List(ctx context.Context, limit, offset int) ([]*entities.StudentProfile, int64, error)
}

type MentorProfileRepository interface {
	Upsert(ctx context.Context, profile *entities.MentorProfile) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.MentorProfile, error)
	List(ctx context.Context, limit, offset int) ([]*entities.MentorProfile, int64, error)
}
