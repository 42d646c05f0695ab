package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	auditdomain "github.com/lucas-b-santos/invoice-dashboard/internal/audit/domain"
	authdomain "github.com/lucas-b-santos/invoice-dashboard/internal/auth/domain"
	"github.com/lucas-b-santos/invoice-dashboard/internal/config"
	customerdomain "github.com/lucas-b-santos/invoice-dashboard/internal/customer/domain"
	invoicedomain "github.com/lucas-b-santos/invoice-dashboard/internal/invoice/domain"
	"github.com/lucas-b-santos/invoice-dashboard/internal/render"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	Cfg          config.Config
	DB           *gorm.DB
	Log          *zap.Logger
	Engine       *gin.Engine
	Renderer     render.Renderer
	InvoiceSvc   invoicedomain.Service
	AuthSvc      authdomain.Service
	CustomerRepo customerdomain.Repository
	AuditSvc     auditdomain.Service `optional:"true"`
}

// Server holds the HTTP handlers of the dashboard.
type Server struct {
	cfg          config.Config
	db           *gorm.DB
	log          *zap.Logger
	engine       *gin.Engine
	renderer     render.Renderer
	invoiceSvc   invoicedomain.Service
	authSvc      authdomain.Service
	customerRepo customerdomain.Repository
	auditSvc     auditdomain.Service

	listingCache *listingCache
	loginLimiter *rateLimiter
}

func NewServer(p Params) *Server {
	return &Server{
		cfg:          p.Cfg,
		db:           p.DB,
		log:          p.Log.Named("server"),
		engine:       p.Engine,
		renderer:     p.Renderer,
		invoiceSvc:   p.InvoiceSvc,
		authSvc:      p.AuthSvc,
		customerRepo: p.CustomerRepo,
		auditSvc:     p.AuditSvc,
		listingCache: newListingCache(p.Cfg.ListingCacheTTL),
		loginLimiter: newRateLimiter(p.Cfg.LoginRateLimit, p.Cfg.LoginRateWindow),
	}
}

// RegisterRoutes binds all dashboard routes on the engine.
func (s *Server) RegisterRoutes() {
	s.engine.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/dashboard/invoices")
	})

	s.engine.GET("/login", s.ShowLogin)
	s.engine.POST("/login", s.Login)
	s.engine.POST("/logout", s.Logout)

	dashboard := s.engine.Group("/dashboard", s.SessionRequired())
	dashboard.GET("/invoices", s.ListInvoices)
	dashboard.GET("/invoices/create", s.ShowCreateInvoice)
	dashboard.POST("/invoices", s.CreateInvoice)
	dashboard.GET("/invoices/:id/edit", s.ShowEditInvoice)
	dashboard.POST("/invoices/:id", s.UpdateInvoice)
	dashboard.POST("/invoices/:id/delete", s.DeleteInvoice)
}

// RunHTTP starts the HTTP listener under the fx lifecycle.
func RunHTTP(lc fx.Lifecycle, s *Server) {
	srv := &http.Server{
		Addr:    s.cfg.Addr,
		Handler: s.engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			s.log.Info("http server listening", zap.String("addr", s.cfg.Addr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					s.log.Error("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}
