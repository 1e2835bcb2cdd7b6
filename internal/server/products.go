package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/levelupgamer/lu/internal/catalog"
	"github.com/levelupgamer/lu/internal/domain"
)

// productResponse adds the rating and cart membership to a product.
type productResponse struct {
	domain.Product
	Rating *float64 `json:"rating"`
	InCart bool     `json:"in_cart"`
}

func (s *Server) decorate(c *gin.Context, products []domain.Product) ([]productResponse, bool) {
	ratings, err := s.store.AverageRatings()
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	cartCodes, err := s.store.CartCodes()
	if err != nil {
		respondError(c, err)
		return nil, false
	}

	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		resp := productResponse{Product: p, InCart: catalog.InCart(p.Code, cartCodes)}
		if r, ok := ratings[p.Code]; ok {
			resp.Rating = catalog.Rating(r)
		}
		out = append(out, resp)
	}
	return out, true
}

func (s *Server) listProducts(c *gin.Context) {
	products, err := s.store.ListProducts()
	if err != nil {
		respondError(c, err)
		return
	}

	category := catalog.CategoryOrAll(c.Query("category"))
	filtered := catalog.Filter(products, c.Query("search"), category)

	out, ok := s.decorate(c, filtered)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) getProduct(c *gin.Context) {
	code := c.Param("code")
	p, found, err := s.store.GetProduct(code)
	if err != nil {
		respondError(c, err)
		return
	}
	if !found {
		notFound(c, "product", code)
		return
	}

	out, ok := s.decorate(c, []domain.Product{p})
	if !ok {
		return
	}
	c.JSON(http.StatusOK, out[0])
}

func (s *Server) listCategories(c *gin.Context) {
	products, err := s.store.ListProducts()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, catalog.Categories(products))
}

func (s *Server) featured(c *gin.Context) {
	products, err := s.store.ListProducts()
	if err != nil {
		respondError(c, err)
		return
	}

	s.rngMu.Lock()
	sample := catalog.Featured(products, s.featuredCount, s.rng)
	s.rngMu.Unlock()

	out, ok := s.decorate(c, sample)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, out)
}
