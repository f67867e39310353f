// File: lawroute/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lawroute/config"
	"lawroute/database"
	accountRepoPkg "lawroute/database/repository/account"
	articleRepoPkg "lawroute/database/repository/article"
	authorityRepoPkg "lawroute/database/repository/authority"
	issueRepoPkg "lawroute/database/repository/issue"
	profileRepoPkg "lawroute/database/repository/lawyerprofile"
	requestRepoPkg "lawroute/database/repository/request"
	"lawroute/handlers"
	"lawroute/middleware"
	"lawroute/routes"
	"lawroute/services/article"
	"lawroute/services/auth"
	"lawroute/services/directory"
	"lawroute/services/issue"
	"lawroute/services/lawyerprofile"
	"lawroute/services/request"
	"lawroute/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()

	// Photo storage is optional; profiles work without it.
	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Warnf("main: photo storage disabled: %v", err)
		storageService = nil
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	accountRepo := accountRepoPkg.NewMongoAccountRepo()
	authorityRepo := authorityRepoPkg.NewMongoAuthorityRepo()
	issueRepo := issueRepoPkg.NewMongoIssueRepo()
	requestRepo := requestRepoPkg.NewMongoRequestRepo()
	profileRepo := profileRepoPkg.NewMongoProfileRepo()
	articleRepo := articleRepoPkg.NewMongoArticleRepo()

	// services.
	authorityDirectory := &directory.AuthorityDirectory{Repo: authorityRepo}
	authService := &auth.DefaultAuthService{
		Accounts:  accountRepo,
		Profiles:  profileRepo,
		Directory: authorityDirectory,
	}
	issueService := &issue.DefaultIssueService{
		Repo:      issueRepo,
		Directory: authorityDirectory,
	}
	requestService := &request.DefaultRequestService{
		Repo:     requestRepo,
		Accounts: accountRepo,
	}
	profileService := &lawyerprofile.DefaultProfileService{
		Repo:     profileRepo,
		Accounts: accountRepo,
	}
	articleService := &article.DefaultArticleService{Repo: articleRepo}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		AccountRepo: accountRepo,
		Auth:        &handlers.AuthHandler{AuthService: authService},
		Issues:      &handlers.IssueHandler{IssueService: issueService},
		Requests:    &handlers.RequestHandler{RequestService: requestService},
		Profiles: &handlers.ProfileHandler{
			ProfileService: profileService,
			StorageService: storageService,
		},
		Articles: &handlers.ArticleHandler{ArticleService: articleService},
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
