package router

import (
	"net/http"
	"time"

	"mealslot/internal/catalog"
	"mealslot/internal/middleware"
	"mealslot/internal/party"
	"mealslot/internal/places"
	"mealslot/internal/realtime"
	"mealslot/internal/recipe"
	"mealslot/internal/spin"

	"github.com/gin-gonic/gin"
)

// Deps carries everything the routes need. All fields except Spin are
// optional so tests can mount a subset.
type Deps struct {
	Spin    *spin.Handler
	Party   *party.Handler
	Recipe  *recipe.Handler
	Catalog catalog.Repository
	Hub     *realtime.Hub
}

// New assembles the route table on a fresh engine.
func New(r *gin.Engine, deps Deps) *gin.Engine {
	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// spins and recipe generation are the expensive endpoints
	limiter := middleware.NewRateLimiter(20, time.Minute)

	if deps.Spin != nil {
		limited := r.Group("/")
		limited.Use(limiter.Middleware())
		{
			limited.POST("/spin", deps.Spin.Spin)
		}

		r.POST("/merge", deps.Spin.Merge)
		r.GET("/spins/recent", deps.Spin.Recent)
	}

	if deps.Catalog != nil {
		r.GET("/filters", func(c *gin.Context) {
			f, err := deps.Catalog.ListFilters(c.Request.Context())
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch filters"})
				return
			}
			c.JSON(http.StatusOK, f)
		})
	}

	if deps.Party != nil {
		partyGroup := r.Group("/party")
		{
			partyGroup.POST("", deps.Party.Create)
			partyGroup.POST("/join", deps.Party.Join)
			partyGroup.GET("/:code/state", deps.Party.State)
			partyGroup.POST("/:code/constraints", deps.Party.UpdateConstraints)
			partyGroup.POST("/:code/powerups", deps.Party.UpdatePowerUps)
			partyGroup.POST("/:code/spin", deps.Party.Spin)
			partyGroup.POST("/:code/heartbeat", deps.Party.Heartbeat)
			partyGroup.POST("/:code/leave", deps.Party.Leave)
		}
	}

	if deps.Recipe != nil {
		recipeGroup := r.Group("/recipe")
		recipeGroup.Use(limiter.Middleware())
		{
			recipeGroup.POST("", deps.Recipe.Generate)
		}
	}

	r.GET("/places", places.Handler)

	if deps.Hub != nil {
		r.GET("/ws/:code", deps.Hub.HandleWS)
	}

	return r
}
