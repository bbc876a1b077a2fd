package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-media-hub/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Compress(5, "application/json"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, errRouteNotFound)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, errMethodNotAllowed)
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", h.health)
		r.Get("/version", h.getServerVersion)

		r.Route("/user", func(r chi.Router) {
			// routes without authorization
			r.Get("/duplicate", h.isDuplicatedEmail)
			r.Post("/sign-up/verify-mail", h.signUpVerifyMail)
			r.Post("/sign-up/verify-auth", h.signUpVerifyAuth)
			r.Post("/sign-up", h.signUp)
			r.Post("/sign-in", h.signIn)
			r.Post("/token/refresh", h.refreshToken)
			r.Post("/password/find", h.findPassword)

			r.Group(func(r chi.Router) {
				r.Use(h.auth)
				r.Get("/me", h.findMe)
				r.Put("/password", h.updatePassword)
				r.Get("/profiles", h.findUserProfiles)
			})
		})

		r.Route("/profiles", func(r chi.Router) {
			r.Use(h.auth)
			r.Post("/", h.createProfile)
			r.Get("/{id}", h.findProfile)
			r.Put("/{id}", h.updateProfile)
			r.Delete("/{id}", h.deleteProfile)

			r.Get("/{id}/likes", h.findLikes)
			r.Post("/{id}/likes", h.createLike)
			r.Delete("/{id}/likes/{mediaContentsID}", h.deleteLike)

			r.Get("/{id}/wishes", h.findWishes)
			r.Post("/{id}/wishes", h.createWish)
			r.Delete("/{id}/wishes/{mediaContentsID}", h.deleteWish)
		})

		r.Route("/media-contents", func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/", h.findAllMediaContents)
			r.Get("/{id}", h.findMediaContents)
			r.Get("/{id}/series", h.findMediaSeriesByContents)
			r.Get("/series/{seriesID}", h.findMediaSeries)

			r.Group(func(r chi.Router) {
				r.Use(requireRole(models.RoleAdmin))
				r.Post("/", h.createMediaContents)
				r.Put("/{id}", h.updateMediaContents)
				r.Delete("/{id}", h.deleteMediaContents)

				r.Post("/{id}/series", h.createMediaSeries)
				r.Put("/series/{seriesID}", h.updateMediaSeries)
				r.Delete("/series/{seriesID}", h.deleteMediaSeries)

				r.Post("/{id}/{kind}", h.addCast)
				r.Delete("/{id}/{kind}/{castID}", h.removeCast)
			})
		})

		r.Route("/genres", namedRoutes(h, h.services.GenreService))
		r.Route("/actors", namedRoutes(h, h.services.ActorService))
		r.Route("/creators", namedRoutes(h, h.services.CreatorService))
	})

	return router
}
