package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"news-cms/cmd/api/auth"
	"news-cms/cmd/api/handlers"
	"news-cms/cmd/api/middleware"
	"news-cms/cmd/api/services"
	"news-cms/config"
	"news-cms/db"
	_ "news-cms/docs"
	"news-cms/fieldnotes"
	"news-cms/repositories"
)

func New(jwtManager *auth.JWTManager) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RequestTrace())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", "X-Request-Id")
	r.Use(cors.New(corsCfg))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		if err := db.Client().Ping(ctx, nil); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "mongo": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	cfg := config.GetConfig()
	database := db.Database()

	newsRepo := repositories.NewNewsRepository(database)
	articleRepo := repositories.NewArticleRepository(database)
	categoryRepo := repositories.NewCategoryRepository(database)
	tagRepo := repositories.NewTagRepository(database)
	userRepo := repositories.NewUserRepository(database)

	newsSvc := services.NewNewsService(newsRepo, cfg.Content.ReadingSpeed)
	articleSvc := services.NewArticleService(articleRepo, categoryRepo, tagRepo, userRepo, cfg.Content.ReadingSpeed)
	categorySvc := services.NewCategoryService(categoryRepo, articleRepo)
	tagSvc := services.NewTagService(tagRepo, articleRepo)
	authSvc := services.NewAuthService(userRepo, jwtManager)
	adminSvc := services.NewAdminService(database, fieldnotes.NewStore(cfg.Content.FieldCommentsPath))

	api := r.Group("/api/v1")
	{
		api.POST("/auth/login", handlers.LoginHandler(authSvc))

		api.GET("/news", handlers.ListNewsHandler(newsSvc))
		api.GET("/news/:id", handlers.GetNewsHandler(newsSvc))

		api.GET("/articles", handlers.ListArticlesHandler(articleSvc))
		api.GET("/articles/:id", handlers.GetArticleHandler(articleSvc))

		api.GET("/categories", handlers.ListCategoriesHandler(categorySvc))
		api.GET("/categories/:id", handlers.GetCategoryHandler(categorySvc))

		api.GET("/tags", handlers.ListTagsHandler(tagSvc))
		api.GET("/tags/:id", handlers.GetTagHandler(tagSvc))

		admin := api.Group("/admin", middleware.AdminAuth(authSvc))
		{
			admin.GET("/news", handlers.AdminListNewsHandler(newsSvc))
			admin.GET("/news/:id", handlers.AdminGetNewsHandler(newsSvc))
			admin.POST("/news", handlers.CreateNewsHandler(newsSvc))
			admin.PUT("/news/:id", handlers.UpdateNewsHandler(newsSvc))
			admin.DELETE("/news/:id", handlers.DeleteNewsHandler(newsSvc))

			admin.GET("/articles", handlers.AdminListArticlesHandler(articleSvc))
			admin.GET("/articles/:id", handlers.AdminGetArticleHandler(articleSvc))
			admin.POST("/articles", handlers.CreateArticleHandler(articleSvc))
			admin.PUT("/articles/:id", handlers.UpdateArticleHandler(articleSvc))
			admin.DELETE("/articles/:id", handlers.DeleteArticleHandler(articleSvc))
			admin.POST("/articles/recount", handlers.RecountArticlesHandler(articleSvc))

			admin.POST("/categories", handlers.CreateCategoryHandler(categorySvc))
			admin.PUT("/categories/:id", handlers.UpdateCategoryHandler(categorySvc))
			admin.DELETE("/categories/:id", handlers.DeleteCategoryHandler(categorySvc))

			admin.POST("/tags", handlers.CreateTagHandler(tagSvc))
			admin.PUT("/tags/:id", handlers.UpdateTagHandler(tagSvc))
			admin.DELETE("/tags/:id", handlers.DeleteTagHandler(tagSvc))

			admin.GET("/auth/me", handlers.MeHandler(authSvc))
			admin.GET("/users", handlers.ListUsersHandler(authSvc))

			admin.GET("/database/news/comments", handlers.ListFieldCommentsHandler(adminSvc))
			admin.POST("/database/news/comments", handlers.SetFieldCommentHandler(adminSvc))
			admin.GET("/database/:collection", handlers.BrowseCollectionHandler(adminSvc))
			admin.POST("/database/:collection/fields", handlers.FieldOperationHandler(adminSvc))
		}
	}

	return r
}
