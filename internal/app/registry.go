package app

import (
	"context"
	"database/sql"

	"go-hrms/internal/config"
	"go-hrms/internal/document"
	"go-hrms/internal/employee"
	"go-hrms/internal/lookuptype"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/middleware"
	"go-hrms/internal/personaldetails"
	"go-hrms/internal/profilefile"
	"go-hrms/internal/rbac"
	"go-hrms/internal/rbac/infra"
	"go-hrms/internal/request"
	"go-hrms/internal/shared/counter"
	"go-hrms/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	store storage.ObjectStore,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	employeeRepo := employee.NewRepository(gormDB)
	lookupTypeRepo := lookuptype.NewRepository(gormDB)
	requestRepo := request.NewRepository(gormDB)
	personalDetailsRepo := personaldetails.NewRepository(gormDB)
	profileFileRepo := profilefile.NewRepository(gormDB)
	documentRepo := document.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer, logger)
	if err := rbacService.LoadPolicy(context.Background()); err != nil {
		return err
	}

	// --- Services ---
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, outboxRepo, rdb, logger)
	lookupTypeService := lookuptype.NewService(db, lookupTypeRepo, counterRepo, rdb, logger)
	requestService := request.NewServiceWithOutbox(db, requestRepo, outboxRepo, logger)
	personalDetailsService := personaldetails.NewService(db, personalDetailsRepo, logger)
	profileFileService := profilefile.NewService(db, profileFileRepo, store, logger)
	documentService := document.NewService(documentRepo, store, logger)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService, logger)
	lookupTypeHandler := lookuptype.NewHandler(lookupTypeService, logger)
	requestHandler := request.NewHandler(requestService, logger)
	personalDetailsHandler := personaldetails.NewHandler(personalDetailsService, logger)
	profileFileHandler := profilefile.NewHandler(profileFileService, logger)
	documentHandler := document.NewHandler(documentService, logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)

	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	auth := middleware.AuthMiddleware(cfg.JWT.Secret)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		employee.RegisterRoutes(api, employeeHandler, rbacService, auth, logger)
		lookuptype.RegisterRoutes(api, lookupTypeHandler, rbacService, auth, logger)
		request.RegisterRoutes(api, requestHandler, rbacService, auth, rdb, logger)
		personaldetails.RegisterRoutes(api, personalDetailsHandler, rbacService, auth, logger)
		profilefile.RegisterRoutes(api, profileFileHandler, rbacService, auth, logger)
		document.RegisterRoutes(api, documentHandler, rbacService, auth, logger)
		rbac.RegisterRoutes(api, rbacHandler, rbacService, auth)
	}

	return nil
}
