package server

import (
	"context"
	"net/http"
	"time"

	"github.com/1913176/ess-billing/internal/cache"
	"github.com/1913176/ess-billing/internal/catalog"
	catalogdomain "github.com/1913176/ess-billing/internal/catalog/domain"
	"github.com/1913176/ess-billing/internal/config"
	"github.com/1913176/ess-billing/internal/invoice"
	invoicedomain "github.com/1913176/ess-billing/internal/invoice/domain"
	"github.com/1913176/ess-billing/internal/observability"
	obsmiddleware "github.com/1913176/ess-billing/internal/observability/logger"
	obsmetrics "github.com/1913176/ess-billing/internal/observability/metrics"
	"github.com/1913176/ess-billing/internal/party"
	partydomain "github.com/1913176/ess-billing/internal/party/domain"
	"github.com/1913176/ess-billing/internal/providers/pdf"
	"github.com/1913176/ess-billing/internal/providers/postal"
	"github.com/1913176/ess-billing/internal/reference"
	"github.com/1913176/ess-billing/internal/tax"
	taxdomain "github.com/1913176/ess-billing/internal/tax/domain"
	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	cache.Module,
	postal.Module,
	pdf.Module,
	party.Module,
	catalog.Module,
	tax.Module,
	reference.Module,
	invoice.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	return NewEngine(obsCfg, httpMetrics)
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine       *gin.Engine
	cfg          config.Config
	genID        *snowflake.Node
	partySvc     partydomain.Service
	catalogSvc   catalogdomain.Service
	taxSvc       taxdomain.Service
	referenceSvc reference.Service
	invoiceSvc   invoicedomain.Service
	pdfProvider  pdf.Provider
}

type ServerParams struct {
	fx.In

	Gin          *gin.Engine
	Cfg          config.Config
	GenID        *snowflake.Node
	PartySvc     partydomain.Service
	CatalogSvc   catalogdomain.Service
	TaxSvc       taxdomain.Service
	ReferenceSvc reference.Service
	InvoiceSvc   invoicedomain.Service
	PDFProvider  pdf.Provider
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:       p.Gin,
		cfg:          p.Cfg,
		genID:        p.GenID,
		partySvc:     p.PartySvc,
		catalogSvc:   p.CatalogSvc,
		taxSvc:       p.TaxSvc,
		referenceSvc: p.ReferenceSvc,
		invoiceSvc:   p.InvoiceSvc,
		pdfProvider:  p.PDFProvider,
	}

	svc.registerRoutes()

	return svc
}

func (s *Server) registerRoutes() {
	r := s.engine

	pincode := r.Group("/pincode")
	{
		pincode.GET("/party-list/", s.ListParties)
		pincode.GET("/addresses/:partyId/", s.ListAddresses)
		pincode.POST("/addresses/:partyId/", s.SaveAddress)
	}

	r.GET("/salesref/salespersons/", s.ListSalespersons)
	r.GET("/reference/states", s.ListStates)

	item := r.Group("/item")
	{
		item.GET("/api/product-service-items/", s.ListCatalogItems)
		item.GET("/gst-taxes/", s.ListGSTTaxes)
	}

	saleinv := r.Group("/saleinv")
	{
		saleinv.GET("/payment-terms/", s.ListPaymentTerms)

		drafts := saleinv.Group("/drafts")
		{
			drafts.POST("/", s.CreateDraft)
			drafts.GET("/:id/", s.GetDraft)
			drafts.POST("/:id/party/", s.SelectDraftParty)
			drafts.POST("/:id/shipping/", s.SetDraftShipping)
			drafts.POST("/:id/items/", s.AddDraftItems)
			drafts.PATCH("/:id/items/:lineId/", s.UpdateDraftItem)
			drafts.DELETE("/:id/items/:lineId/", s.RemoveDraftItem)
			drafts.POST("/:id/adjustments/", s.SetDraftAdjustments)
			drafts.POST("/:id/save/", s.SaveDraft)
			drafts.POST("/:id/reopen/", s.ReopenDraft)
			drafts.DELETE("/:id/", s.DiscardDraft)
		}

		saleinv.POST("/sales-invoice/", s.CreateInvoice)
		saleinv.GET("/sales-invoice/", s.ListInvoices)
		saleinv.GET("/sales-invoice/:id/", s.GetInvoice)
		saleinv.GET("/sales-invoice/:id/pdf/", s.DownloadInvoicePDF)
		saleinv.POST("/sales-invoice/:id/edit/", s.EditInvoice)
		saleinv.PUT("/sales-invoice/:id/update/", s.UpdateInvoice)
		saleinv.DELETE("/sales-invoice/delete/:id/", s.DeleteInvoice)
	}
}
