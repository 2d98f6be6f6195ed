// file: routes/router.go
package routes

import (
	"GuildHall/controllers"
	"GuildHall/middlewares"
	"GuildHall/models"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	apiV1 := r.Group("/api/v1")
	{
		// --- 用户路由 ---
		usersPublic := apiV1.Group("/users")
		{
			usersPublic.POST("/register", controllers.Register)
			usersPublic.POST("/login", controllers.Login)
		}

		// --- 公会路由 ---
		guildRoutes := apiV1.Group("/guilds")
		guildRoutes.Use(middlewares.JWTAuthMiddleware())
		{
			guildRoutes.GET("/:id", controllers.GetGuildDashboard)
			guildRoutes.POST("", middlewares.RoleAuthMiddleware(models.RoleMaster), controllers.CreateGuild)
			guildRoutes.PUT("/:id/config", middlewares.RoleAuthMiddleware(models.RoleMaster), controllers.UpdateGuildConfig)
			guildRoutes.POST("/:id/gold", middlewares.RoleAuthMiddleware(models.RoleMaster), controllers.ManageGold)
			guildRoutes.POST("/:id/buildings", middlewares.RoleAuthMiddleware(models.RoleMaster), controllers.ConstructBuilding)
		}

		// --- 设施图鉴路由 ---
		buildingRoutes := apiV1.Group("/buildings")
		buildingRoutes.Use(middlewares.JWTAuthMiddleware())
		{
			buildingRoutes.GET("", controllers.GetBuildingList)
			buildingRoutes.GET("/:id", controllers.GetBuildingDetail)
			buildingRoutes.POST("", middlewares.RoleAuthMiddleware(models.RoleMaster), controllers.CreateBuilding)
		}

		// --- 委托路由 ---
		questRoutes := apiV1.Group("/quests")
		questRoutes.Use(middlewares.JWTAuthMiddleware())
		{
			questRoutes.GET("", controllers.ListQuests)
			questRoutes.POST("", middlewares.RoleAuthMiddleware(models.RoleMaster), controllers.CreateQuest)
			questRoutes.POST("/quick", middlewares.RoleAuthMiddleware(models.RoleMaster), controllers.CreateQuickQuest)
			questRoutes.POST("/:id/delegate", middlewares.RoleAuthMiddleware(models.RoleMaster), controllers.DelegateQuest)
			questRoutes.PATCH("/:id/complete", middlewares.RoleAuthMiddleware(models.RoleMaster), controllers.CompleteQuest)
		}

		// --- 派遣路由 ---
		dispatchRoutes := apiV1.Group("/dispatches")
		dispatchRoutes.Use(middlewares.JWTAuthMiddleware())
		{
			dispatchRoutes.GET("/pending", controllers.ListPendingDispatches)
			dispatchRoutes.POST("", middlewares.RoleAuthMiddleware(models.RoleMaster), controllers.CreateDispatch)
			dispatchRoutes.POST("/:id/resolve", middlewares.RoleAuthMiddleware(models.RoleMaster), controllers.ResolveDispatch)
		}

		// --- 小队与军衔路由 ---
		squadRoutes := apiV1.Group("/squads")
		squadRoutes.Use(middlewares.JWTAuthMiddleware())
		{
			squadRoutes.GET("", controllers.ListSquads)
			squadRoutes.POST("", middlewares.RoleAuthMiddleware(models.RoleMaster), controllers.CreateSquad)
			squadRoutes.PUT("/:id", middlewares.RoleAuthMiddleware(models.RoleMaster), controllers.UpdateSquad)
			squadRoutes.DELETE("/:id", middlewares.RoleAuthMiddleware(models.RoleMaster), controllers.DeleteSquad)
		}
		rankRoutes := apiV1.Group("/squad-ranks")
		rankRoutes.Use(middlewares.JWTAuthMiddleware())
		{
			rankRoutes.GET("", controllers.ListSquadRanks)
			rankRoutes.POST("", middlewares.RoleAuthMiddleware(models.RoleMaster), controllers.CreateSquadRank)
			rankRoutes.PUT("/:id", middlewares.RoleAuthMiddleware(models.RoleMaster), controllers.UpdateSquadRank)
			rankRoutes.DELETE("/:id", middlewares.RoleAuthMiddleware(models.RoleMaster), controllers.DeleteSquadRank)
		}

		// --- 成员路由 ---
		memberRoutes := apiV1.Group("/members")
		memberRoutes.Use(middlewares.JWTAuthMiddleware())
		{
			memberRoutes.GET("", controllers.ListMembers)
			memberRoutes.POST("", middlewares.RoleAuthMiddleware(models.RoleMaster), controllers.CreateMember)
			memberRoutes.PUT("/:id/status", middlewares.RoleAuthMiddleware(models.RoleMaster), controllers.UpdateMemberStatus)
			memberRoutes.PUT("/:id/squad", middlewares.RoleAuthMiddleware(models.RoleMaster), controllers.AssignMemberSquad)
		}

		// --- 编年史路由 ---
		chronicleRoutes := apiV1.Group("/chronicle")
		chronicleRoutes.Use(middlewares.JWTAuthMiddleware())
		{
			chronicleRoutes.GET("", controllers.ListChronicle)
			chronicleRoutes.GET("/stats", controllers.GetQuestRankStats)
		}
	}

	return r
}
