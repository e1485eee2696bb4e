package usecases

import (
	"context"

	"github.com/google/uuid"
	"team-mentorship.backend/internal/domain/entities"
	domainerrors "team-mentorship.backend/internal/domain/errors"
	"team-mentorship.backend/internal/domain/repositories"
)

// ProfileUsecase handles student and mentor profiles
type ProfileUsecase struct {
	userRepo    repositories.UserRepository
	studentRepo repositories.StudentProfileRepository
	mentorRepo  repositories.MentorProfileRepository
}

// NewProfileUsecase creates a new profile usecase
func NewProfileUsecase(
	userRepo repositories.UserRepository,
	studentRepo repositories.StudentProfileRepository,
	mentorRepo repositories.MentorProfileRepository,
) *ProfileUsecase {
	return &ProfileUsecase{
		userRepo:    userRepo,
		studentRepo: studentRepo,
		mentorRepo:  mentorRepo,
	}
}

// UpsertStudentProfile creates or replaces the actor's student profile.
func (uc *ProfileUsecase) UpsertStudentProfile(ctx context.Context, actor Actor, input *entities.UpdateStudentProfileInput) (*entities.StudentProfile, error) {
	if actor.Role != entities.UserRoleStudent && !actor.IsAdmin() {
		return nil, domainerrors.Forbidden("only students have a student profile")
	}
	if !entities.ValidateSDGs(input.SDGs) {
		return nil, domainerrors.BadRequest("sdgs must be between 1 and 17")
	}

	profile := &entities.StudentProfile{
		UserID: actor.ID,
		Skills: input.Skills,
		Domain: input.Domain,
		Bio:    input.Bio,
		Links:  input.Links,
		SDGs:   input.SDGs,
	}
	if err := uc.studentRepo.Upsert(ctx, profile); err != nil {
		return nil, err
	}
	return uc.studentRepo.GetByUserID(ctx, actor.ID)
}

// GetStudentProfile returns a student profile by user id.
func (uc *ProfileUsecase) GetStudentProfile(ctx context.Context, userID uuid.UUID) (*entities.StudentProfile, error) {
	return uc.studentRepo.GetByUserID(ctx, userID)
}

// ListStudentProfiles returns student profiles with pagination.
func (uc *ProfileUsecase) ListStudentProfiles(ctx context.Context, limit, offset int) ([]*entities.StudentProfile, int64, error) {
	return uc.studentRepo.List(ctx, limit, offset)
}

// UpsertMentorProfile creates or replaces the actor's mentor profile.
func (uc *ProfileUsecase) UpsertMentorProfile(ctx context.Context, actor Actor, input *entities.UpdateMentorProfileInput) (*entities.MentorProfile, error) {
	if actor.Role != entities.UserRoleMentor && !actor.IsAdmin() {
		return nil, domainerrors.Forbidden("only mentors have a mentor profile")
	}
	if input.ExperienceYears < 0 {
		return nil, domainerrors.BadRequest("experienceYears cannot be negative")
	}

	profile := &entities.MentorProfile{
		UserID:          actor.ID,
		Expertise:       input.Expertise,
		Domain:          input.Domain,
		Bio:             input.Bio,
		ExperienceYears: input.ExperienceYears,
		Links:           input.Links,
	}
	if err := uc.mentorRepo.Upsert(ctx, profile); err != nil {
		return nil, err
	}
	return uc.mentorRepo.GetByUserID(ctx, actor.ID)
}

// GetMentorProfile returns a mentor profile by user id.
func (uc *ProfileUsecase) GetMentorProfile(ctx context.Context, userID uuid.UUID) (*entities.MentorProfile, error) {
	return uc.mentorRepo.GetByUserID(ctx, userID)
}

// ListMentorProfiles returns mentor profiles with pagination.
func (uc *ProfileUsecase) ListMentorProfiles(ctx context.Context, limit, offset int) ([]*entities.MentorProfile, int64, error) {
	return uc.mentorRepo.List(ctx, limit, offset)
}
