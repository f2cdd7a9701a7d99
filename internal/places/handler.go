package places

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// --------------------------------------------------
// GET /places
// --------------------------------------------------
func Handler(c *gin.Context) {
	lat, _ := strconv.ParseFloat(c.Query("lat"), 64)
	lon, _ := strconv.ParseFloat(c.Query("lon"), 64)

	var tags []string
	if raw := c.Query("tags"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				tags = append(tags, t)
			}
		}
	}

	venues := Nearby(Query{
		City:    c.Query("city"),
		Lat:     lat,
		Lon:     lon,
		Cuisine: c.Query("cuisine"),
		Tags:    tags,
	})

	c.JSON(http.StatusOK, gin.H{"places": venues})
}
