package local

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"

	httphandler "github.com/MKhiriev/simbaid-sync/internal/handler/http"
	"github.com/MKhiriev/simbaid-sync/internal/logger"
	"github.com/MKhiriev/simbaid-sync/internal/service"
	"github.com/MKhiriev/simbaid-sync/models"
)

const (
	maxBodySize     = 1 << 20
	wsWriteTimeout  = 10 * time.Second
	wsPingInterval  = 30 * time.Second
	wsStatusBuffer  = 8
	wsControlBuffer = 4
)

type Handler struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	upgrader  websocket.Upgrader

	logger *logger.Logger
}

func NewHandler(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	return &Handler{
		services:  services,
		buildInfo: buildInfo,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     sameOrigin,
		},
		logger: logger.WithComponent("local-api"),
	}
}

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, httphandler.WithTraceID(h.logger), httphandler.WithLogging, httphandler.WithGZip)

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getVersion)

		r.Get("/status", h.getStatus)
		r.Get("/status/ws", h.streamStatus)

		r.Get("/queue", h.listQueue)
		r.Post("/queue/{kind}", h.enqueue)
		r.Post("/queue/failed/{id}/retry", h.retryFailedItem)
		r.Delete("/queue/failed/{id}", h.removeFailedItem)

		r.Post("/sync", h.syncNow)
		r.Post("/sync/retry", h.retryFailed)
		r.Post("/sync/clear", h.clearFailed)

		r.Route("/wallet", func(r chi.Router) {
			r.Post("/loans", h.submitLoan)
			r.Post("/credentials", h.requestCredential)
			r.Post("/voice", h.enrollVoice)
			r.Post("/profile", h.updateProfile)
		})
	})

	router.MethodNotAllowed(httphandler.CheckHTTPMethod(router))

	return router
}

func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, h.buildInfo, http.StatusOK)
}
