package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		name TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'STUDENT',
		avatar_path TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createProfileTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE student_profiles (
		id TEXT PRIMARY KEY,
		user_id TEXT UNIQUE NOT NULL,
		skills TEXT,
		domain TEXT,
		bio TEXT,
		links TEXT,
		sdgs TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE mentor_profiles (
		id TEXT PRIMARY KEY,
		user_id TEXT UNIQUE NOT NULL,
		expertise TEXT,
		domain TEXT,
		bio TEXT,
		experience_years INTEGER NOT NULL DEFAULT 0,
		links TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createCompetitionTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE competitions (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		category TEXT NOT NULL,
		description TEXT,
		date_range TEXT NOT NULL,
		deadline DATETIME,
		team_size TEXT,
		status TEXT NOT NULL,
		prize_pool TEXT,
		required_skills TEXT,
		sdgs TEXT,
		photo_path TEXT,
		created_by TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE competition_applications (
		id TEXT PRIMARY KEY,
		competition_id TEXT NOT NULL,
		student_id TEXT NOT NULL,
		team_id TEXT NOT NULL,
		motivation TEXT,
		skills TEXT,
		status TEXT NOT NULL DEFAULT 'pending',
		result TEXT,
		analysis TEXT,
		resolved_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createTeamTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE teams (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		project TEXT,
		description TEXT,
		owner_id TEXT NOT NULL,
		skills_needed TEXT,
		max_members INTEGER NOT NULL DEFAULT 1,
		current_members INTEGER NOT NULL DEFAULT 1,
		deadline DATETIME,
		status TEXT NOT NULL DEFAULT 'recruiting',
		sdgs TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE team_members (
		id TEXT PRIMARY KEY,
		team_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		name TEXT NOT NULL,
		role TEXT,
		joined_at DATETIME NOT NULL,
		UNIQUE(team_id, user_id)
	);`)
	mustExec(t, db, `CREATE TABLE team_mentors (
		id TEXT PRIMARY KEY,
		team_id TEXT NOT NULL,
		mentor_id TEXT NOT NULL,
		added_at DATETIME NOT NULL,
		UNIQUE(team_id, mentor_id)
	);`)
}

func createOpeningTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE team_openings (
		id TEXT PRIMARY KEY,
		team_id TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT,
		skills_needed TEXT,
		seats_available INTEGER NOT NULL,
		deadline DATETIME,
		status TEXT NOT NULL DEFAULT 'open',
		created_by TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE opening_applications (
		id TEXT PRIMARY KEY,
		opening_id TEXT NOT NULL,
		applicant_id TEXT NOT NULL,
		message TEXT,
		skills TEXT,
		status TEXT NOT NULL DEFAULT 'pending',
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createInvitationTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE invitations (
		id TEXT PRIMARY KEY,
		team_id TEXT NOT NULL,
		invitee_id TEXT NOT NULL,
		message TEXT,
		status TEXT NOT NULL DEFAULT 'pending',
		created_by TEXT NOT NULL,
		responded_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createMentorApplicationTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE mentor_applications (
		id TEXT PRIMARY KEY,
		mentor_id TEXT NOT NULL,
		team_id TEXT NOT NULL,
		message TEXT,
		status TEXT NOT NULL DEFAULT 'pending',
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createChatMessageTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE chat_messages (
		id TEXT PRIMARY KEY,
		from_id TEXT NOT NULL,
		to_id TEXT NOT NULL,
		text TEXT NOT NULL,
		is_team BOOLEAN NOT NULL DEFAULT false,
		read_by TEXT,
		created_at DATETIME
	);`)
}
