package main

import (
	"github.com/gin-gonic/gin"
	"team-mentorship.backend/internal/interfaces/http/handlers"
	"team-mentorship.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler              *handlers.AuthHandler
	profileHandler           *handlers.ProfileHandler
	teamHandler              *handlers.TeamHandler
	openingHandler           *handlers.OpeningHandler
	invitationHandler        *handlers.InvitationHandler
	mentorApplicationHandler *handlers.MentorApplicationHandler
	competitionHandler       *handlers.CompetitionHandler
	chatHandler              *handlers.ChatHandler
	dashboardHandler         *handlers.DashboardHandler
	authMiddleware           gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/refresh", d.authHandler.Refresh)
			auth.GET("/me", d.authMiddleware, d.authHandler.Me)
		}

		// Profile routes (public read, protected write)
		profiles := v1.Group("/profiles")
		{
			profiles.GET("/students", d.profileHandler.ListStudentProfiles)
			profiles.GET("/student/:userId", d.profileHandler.GetStudentProfile)
			profiles.GET("/mentors", d.profileHandler.ListMentorProfiles)
			profiles.GET("/mentor/:userId", d.profileHandler.GetMentorProfile)
			profiles.PUT("/student", d.authMiddleware, d.profileHandler.UpsertStudentProfile)
			profiles.PUT("/mentor", d.authMiddleware, d.profileHandler.UpsertMentorProfile)
		}

		// Team routes (public read, protected write)
		teams := v1.Group("/teams")
		{
			teams.GET("", d.teamHandler.ListTeams)
			teams.GET("/mine", d.authMiddleware, d.teamHandler.ListMyTeams)
			teams.GET("/:id", d.teamHandler.GetTeam)
			teams.POST("", d.authMiddleware, d.teamHandler.CreateTeam)
			teams.PUT("/:id", d.authMiddleware, d.teamHandler.UpdateTeam)
			teams.PUT("/:id/sdgs", d.authMiddleware, d.teamHandler.UpdateTeamSDGs)
			teams.DELETE("/:id", d.authMiddleware, d.teamHandler.DeleteTeam)

			teams.POST("/:id/members", d.authMiddleware, d.teamHandler.AddMember)
			teams.DELETE("/:id/members/:userId", d.authMiddleware, d.teamHandler.RemoveMember)

			teams.GET("/:id/openings", d.openingHandler.ListTeamOpenings)
			teams.POST("/:id/openings", d.authMiddleware, d.openingHandler.CreateOpening)

			teams.GET("/:id/invitations", d.authMiddleware, d.invitationHandler.ListTeamInvitations)
			teams.POST("/:id/invitations", d.authMiddleware, d.invitationHandler.CreateInvitation)

			teams.GET("/:id/mentor-applications", d.authMiddleware, d.mentorApplicationHandler.ListTeamMentorApplications)
			teams.POST("/:id/mentor-applications", d.authMiddleware, d.mentorApplicationHandler.ApplyAsMentor)

			teams.GET("/:id/competition-applications", d.competitionHandler.ListTeamCompetitionApplications)
		}

		// Opening routes
		openings := v1.Group("/openings")
		{
			openings.GET("", d.openingHandler.ListOpenOpenings)
			openings.GET("/:id", d.openingHandler.GetOpening)
			openings.PUT("/:id", d.authMiddleware, d.openingHandler.UpdateOpening)
			openings.DELETE("/:id", d.authMiddleware, d.openingHandler.DeleteOpening)
			openings.POST("/:id/applications", d.authMiddleware, middleware.IdempotencyMiddleware(), d.openingHandler.ApplyToOpening)
			openings.GET("/:id/applications", d.authMiddleware, d.openingHandler.ListOpeningApplications)
		}

		// Opening application resolution
		openingApplications := v1.Group("/opening-applications")
		openingApplications.Use(d.authMiddleware)
		{
			openingApplications.GET("/mine", d.openingHandler.ListMyOpeningApplications)
			openingApplications.POST("/:id/accept", d.openingHandler.AcceptOpeningApplication)
			openingApplications.POST("/:id/reject", d.openingHandler.RejectOpeningApplication)
			openingApplications.POST("/:id/withdraw", d.openingHandler.WithdrawOpeningApplication)
		}

		// Invitation routes (protected)
		invitations := v1.Group("/invitations")
		invitations.Use(d.authMiddleware)
		{
			invitations.GET("/mine", d.invitationHandler.ListMyInvitations)
			invitations.POST("/:id/accept", d.invitationHandler.AcceptInvitation)
			invitations.POST("/:id/reject", d.invitationHandler.RejectInvitation)
			invitations.POST("/:id/withdraw", d.invitationHandler.WithdrawInvitation)
		}

		// Mentor application resolution (protected)
		mentorApplications := v1.Group("/mentor-applications")
		mentorApplications.Use(d.authMiddleware)
		{
			mentorApplications.GET("/mine", d.mentorApplicationHandler.ListMyMentorApplications)
			mentorApplications.POST("/:id/accept", d.mentorApplicationHandler.AcceptMentorApplication)
			mentorApplications.POST("/:id/reject", d.mentorApplicationHandler.RejectMentorApplication)
			mentorApplications.POST("/:id/withdraw", d.mentorApplicationHandler.WithdrawMentorApplication)
		}

		// Competition routes (public read, admin write)
		competitions := v1.Group("/competitions")
		{
			competitions.GET("", d.competitionHandler.ListCompetitions)
			competitions.GET("/:id", d.competitionHandler.GetCompetition)
			competitions.POST("", d.authMiddleware, middleware.RequireAdmin(), d.competitionHandler.CreateCompetition)
			competitions.PUT("/:id", d.authMiddleware, middleware.RequireAdmin(), d.competitionHandler.UpdateCompetition)
			competitions.DELETE("/:id", d.authMiddleware, middleware.RequireAdmin(), d.competitionHandler.DeleteCompetition)
			competitions.POST("/:id/applications", d.authMiddleware, middleware.IdempotencyMiddleware(), d.competitionHandler.ApplyToCompetition)
			competitions.GET("/:id/applications", d.authMiddleware, middleware.RequireAdmin(), d.competitionHandler.ListCompetitionApplications)
		}

		// Competition entry resolution (admin only)
		competitionApplications := v1.Group("/competition-applications")
		competitionApplications.Use(d.authMiddleware, middleware.RequireAdmin())
		{
			competitionApplications.POST("/:id/accept", d.competitionHandler.AcceptCompetitionApplication)
			competitionApplications.POST("/:id/reject", d.competitionHandler.RejectCompetitionApplication)
			competitionApplications.PUT("/:id/result", d.competitionHandler.SetCompetitionResult)
		}

		// Chat routes (protected)
		chat := v1.Group("/chat")
		chat.Use(d.authMiddleware)
		{
			chat.POST("/messages", d.chatHandler.SendMessage)
			chat.GET("/direct/:userId", d.chatHandler.GetConversation)
			chat.GET("/teams/:id", d.chatHandler.GetTeamHistory)
			chat.POST("/read", d.chatHandler.MarkRead)
			chat.GET("/unread", d.chatHandler.UnreadCount)
			chat.GET("/ws", d.chatHandler.Connect)
		}

		// Admin routes (protected)
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireAdmin())
		{
			admin.GET("/dashboard", d.dashboardHandler.GetStats)
		}
	}
}
