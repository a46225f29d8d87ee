package offers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/calvine/marketplace-mcp/internal/domain/offer"
	catalogsvc "github.com/calvine/marketplace-mcp/internal/service/catalog"
)

func Register(rg *gin.RouterGroup, svc *catalogsvc.Service) {
	rg.GET("/", listOffers(svc))
}

// listOffers mirrors the MCP tool over plain HTTP for dashboards and manual
// inspection. Same query shape, same service path, same envelope.
func listOffers(svc *catalogsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q offer.FilterQuery

		q.Category = c.Query("category")
		q.Industry = c.QueryArray("industry")
		q.OfferType = c.QueryArray("offerType")
		q.Region = c.Query("region")
		q.Network = c.QueryArray("network")
		q.Brand = c.Query("brand")

		if v := c.Query("featured"); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid featured"})
				return
			}
			q.Featured = &b
		}
		if v := c.Query("limitOffersCount"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limitOffersCount"})
				return
			}
			q.LimitOffersCount = &n
		}
		if v := c.Query("offset"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid offset"})
				return
			}
			q.Offset = &n
		}
		if v := c.Query("maxPrice"); v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid maxPrice"})
				return
			}
			q.MaxPrice = &f
		}

		if err := q.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		res := svc.FetchOffers(c.Request.Context(), q)
		if res.Empty {
			c.JSON(http.StatusOK, gin.H{
				"message":  res.Message,
				"envelope": res.Envelope,
			})
			return
		}
		c.JSON(http.StatusOK, res.Envelope)
	}
}
