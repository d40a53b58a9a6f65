package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"

	"raydan-backend-go/internal/cache"
	"raydan-backend-go/internal/config"
	"raydan-backend-go/internal/services"
)

type Server struct {
	DB         *sqlx.DB
	Config     config.Config
	Tokens     services.TokenService
	Cache      cache.Cache
	MetricsHub *services.MetricsHub

	validate          *validator.Validate
	membershipLimiter *RateLimiter
}

func NewServer(db *sqlx.DB, cfg config.Config, store cache.Cache, hub *services.MetricsHub) *Server {
	tokens := services.TokenService{
		Secret:     []byte(cfg.JWTSecret),
		Issuer:     cfg.JWTIssuer,
		AccessTTL:  time.Duration(cfg.AccessTTLSeconds) * time.Second,
		RefreshTTL: time.Duration(cfg.RefreshTTLSeconds) * time.Second,
	}
	return &Server{
		DB:                db,
		Config:            cfg,
		Tokens:            tokens,
		Cache:             store,
		MetricsHub:        hub,
		validate:          validator.New(),
		membershipLimiter: NewRateLimiter(cfg.MembershipRateLimit, time.Duration(cfg.MembershipRateWindow)*time.Second),
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestLogger)
	if len(s.Config.CorsOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   s.Config.CorsOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	r.Route("/api", func(api chi.Router) {
		api.Post("/auth/login", s.Login)
		api.Post("/auth/refresh", s.Refresh)
		api.Post("/auth/logout", s.Logout)
		api.With(WithAuth(s.Tokens)).Get("/auth/me", s.Me)

		api.Route("/public", func(pub chi.Router) {
			pub.Get("/hero", s.PublicHero)
			pub.Get("/hero-slides", s.PublicHeroSlides)
			pub.Get("/stats", s.PublicStats)
			pub.Get("/why-points", s.PublicWhyPoints)
			pub.Get("/settings", s.PublicSettings)
			pub.Get("/sections", s.PublicSections)
			pub.Get("/sections/{slug}/categories", s.PublicSectionCategories)
			pub.Get("/team", s.PublicTeam)
			pub.Get("/values", s.PublicValues)

			pub.Get("/briefings", s.PublicBriefings)
			pub.Get("/briefings/{briefingId}", s.PublicBriefingDetail)
			pub.Post("/briefings/{briefingId}/views", s.IncrementBriefingViews)

			pub.Get("/activities", s.PublicActivities)
			pub.Get("/activities/{activityId}", s.PublicActivityDetail)

			pub.Get("/articles", s.PublicArticles)
			pub.Get("/articles/{slug}", s.PublicArticleDetail)

			pub.Get("/business-info", s.PublicBusinessInfo)
			pub.Get("/seo", s.PublicSEO)

			pub.Get("/membership/tiers", s.PublicMembershipTiers)
			pub.With(s.membershipLimiter.Middleware).Post("/membership/applications", s.SubmitMembershipApplication)
		})

		api.Route("/admin", func(admin chi.Router) {
			admin.Use(WithAuth(s.Tokens))
			admin.Use(RequireRole(services.RoleSuperAdmin, services.RoleEditor))

			admin.Get("/dashboard", s.Dashboard)
			admin.Get("/metrics/history", s.MetricsHistory)
			admin.Get("/icons", s.IconNames)

			admin.Route("/briefings", func(r chi.Router) {
				r.Get("/", s.AdminListBriefings)
				r.Post("/", s.AdminCreateBriefing)
				r.Put("/{briefingId}", s.AdminUpdateBriefing)
				r.Delete("/{briefingId}", s.AdminDeleteBriefing)
			})
			admin.Route("/activities", func(r chi.Router) {
				r.Get("/", s.AdminListActivities)
				r.Post("/", s.AdminCreateActivity)
				r.Put("/{activityId}", s.AdminUpdateActivity)
				r.Delete("/{activityId}", s.AdminDeleteActivity)
			})
			admin.Route("/team", func(r chi.Router) {
				r.Get("/", s.AdminListTeam)
				r.Post("/", s.AdminCreateTeamMember)
				r.Put("/{memberId}", s.AdminUpdateTeamMember)
				r.Delete("/{memberId}", s.AdminDeleteTeamMember)
			})
			admin.Route("/values", func(r chi.Router) {
				r.Get("/", s.AdminListValues)
				r.Post("/", s.AdminCreateValue)
				r.Put("/{valueId}", s.AdminUpdateValue)
				r.Delete("/{valueId}", s.AdminDeleteValue)
			})
			admin.Route("/hero-content", func(r chi.Router) {
				r.Get("/", s.AdminGetHeroContent)
				r.Put("/", s.AdminUpsertHeroContent)
			})
			admin.Route("/hero-slides", func(r chi.Router) {
				r.Get("/", s.AdminListHeroSlides)
				r.Post("/", s.AdminCreateHeroSlide)
				r.Put("/{slideId}", s.AdminUpdateHeroSlide)
				r.Delete("/{slideId}", s.AdminDeleteHeroSlide)
			})
			admin.Route("/stats", func(r chi.Router) {
				r.Get("/", s.AdminListStats)
				r.Post("/", s.AdminCreateStat)
				r.Put("/{statId}", s.AdminUpdateStat)
				r.Delete("/{statId}", s.AdminDeleteStat)
			})
			admin.Route("/why-points", func(r chi.Router) {
				r.Get("/", s.AdminListWhyPoints)
				r.Post("/", s.AdminCreateWhyPoint)
				r.Put("/{pointId}", s.AdminUpdateWhyPoint)
				r.Delete("/{pointId}", s.AdminDeleteWhyPoint)
			})
			admin.Route("/settings", func(r chi.Router) {
				r.Get("/", s.AdminListSettings)
				r.Put("/{key}", s.AdminUpsertSetting)
			})
			admin.Route("/sections", func(r chi.Router) {
				r.Get("/", s.AdminListSections)
				r.Post("/", s.AdminCreateSection)
				r.Put("/{sectionId}", s.AdminUpdateSection)
				r.Delete("/{sectionId}", s.AdminDeleteSection)
			})
			admin.Route("/categories", func(r chi.Router) {
				r.Get("/", s.AdminListCategories)
				r.Post("/", s.AdminCreateCategory)
				r.Put("/{categoryId}", s.AdminUpdateCategory)
				r.Delete("/{categoryId}", s.AdminDeleteCategory)
			})
			admin.Route("/articles", func(r chi.Router) {
				r.Get("/", s.AdminListArticles)
				r.Post("/", s.AdminCreateArticle)
				r.Put("/{articleId}", s.AdminUpdateArticle)
				r.Delete("/{articleId}", s.AdminDeleteArticle)
			})
			admin.Route("/comments", func(r chi.Router) {
				r.Get("/", s.AdminListComments)
				r.Post("/{commentId}/approve", s.AdminApproveComment)
				r.Delete("/{commentId}", s.AdminDeleteComment)
			})
			admin.Route("/membership", func(r chi.Router) {
				r.Get("/", s.AdminListApplications)
				r.Get("/{applicationId}", s.AdminApplicationDetail)
				r.Put("/{applicationId}/notes", s.AdminUpdateApplicationNotes)
				r.Post("/{applicationId}/approve", s.AdminApproveApplication)
				r.Post("/{applicationId}/reject", s.AdminRejectApplication)
			})

			admin.Group(func(super chi.Router) {
				super.Use(RequireRole(services.RoleSuperAdmin))
				super.Get("/business-info", s.AdminGetBusinessInfo)
				super.Put("/business-info", s.AdminUpsertBusinessInfo)
				super.Get("/seo", s.AdminListSEO)
				super.Put("/seo", s.AdminUpsertSEO)
				super.Delete("/seo/{seoId}", s.AdminDeleteSEO)
				super.Route("/admins", func(r chi.Router) {
					r.Get("/", s.AdminListAdmins)
					r.Post("/", s.AdminCreateAdmin)
					r.Put("/{adminId}", s.AdminUpdateAdmin)
					r.Delete("/{adminId}", s.AdminDeleteAdmin)
				})
			})
		})

		api.Route("/media", func(media chi.Router) {
			media.With(WithAuth(s.Tokens), RequireRole(services.RoleSuperAdmin, services.RoleEditor)).
				Post("/uploads/{bucket}", s.UploadMedia)
			media.Get("/assets/{assetId}/content", s.MediaContent)
		})
	})

	r.Get("/ws/metrics", s.MetricsSocket)
	return r
}
