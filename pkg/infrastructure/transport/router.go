package transport

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"bakery/pkg/domain/service"
)

const requestIDHeader = "X-Request-ID"

type TokenVerifier interface {
	Verify(token string) (userID int64, err error)
}

type Services struct {
	Orders   service.OrderService
	Products service.ProductService
	Users    service.UserService
	Comments service.CommentService
}

type Handler struct {
	services Services
	verifier TokenVerifier
}

func Router(services Services, verifier TokenVerifier) http.Handler {
	h := &Handler{services: services, verifier: verifier}

	r := mux.NewRouter()
	r.HandleFunc("/auth/register", h.register).Methods(http.MethodPost)
	r.HandleFunc("/auth/login", h.login).Methods(http.MethodPost)

	r.HandleFunc("/products", h.listProducts).Methods(http.MethodGet)
	r.Handle("/products", h.authenticated(h.createProduct)).Methods(http.MethodPost)
	r.HandleFunc("/products/{id:[0-9]+}", h.getProduct).Methods(http.MethodGet)
	r.Handle("/products/{id:[0-9]+}", h.authenticated(h.editProduct)).Methods(http.MethodPut, http.MethodPatch)
	r.Handle("/products/{id:[0-9]+}", h.authenticated(h.deleteProduct)).Methods(http.MethodDelete)

	r.HandleFunc("/products/{id:[0-9]+}/comments", h.listComments).Methods(http.MethodGet)
	r.Handle("/products/{id:[0-9]+}/comments", h.authenticated(h.createComment)).Methods(http.MethodPost)
	r.Handle("/products/{id:[0-9]+}/comments/{commentID:[0-9]+}", h.authenticated(h.editComment)).Methods(http.MethodPut, http.MethodPatch)
	r.Handle("/products/{id:[0-9]+}/comments/{commentID:[0-9]+}", h.authenticated(h.deleteComment)).Methods(http.MethodDelete)

	r.Handle("/orders", h.authenticated(h.listOrders)).Methods(http.MethodGet)
	r.Handle("/orders", h.authenticated(h.createOrder)).Methods(http.MethodPost)
	r.Handle("/orders/{id:[0-9]+}", h.authenticated(h.getOrder)).Methods(http.MethodGet)
	r.Handle("/orders/{id:[0-9]+}", h.authenticated(h.editOrder)).Methods(http.MethodPut, http.MethodPatch)
	r.Handle("/orders/{id:[0-9]+}", h.authenticated(h.deleteOrder)).Methods(http.MethodDelete)

	return logMiddleware(r)
}

func logMiddleware(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, requestID)

		log.WithFields(log.Fields{
			"method":     r.Method,
			"url":        r.URL,
			"remoteAddr": r.RemoteAddr,
			"userAgent":  r.UserAgent(),
			"requestID":  requestID,
		}).Info("got a new request")
		h.ServeHTTP(w, r)
	})
}
