package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/levelupgamer/lu/internal/domain"
)

type cartResponse struct {
	Lines []domain.CartLine `json:"lines"`
	Total int64             `json:"total"`
}

type addToCartRequest struct {
	Code string `json:"code" binding:"required"`
}

type statusRequest struct {
	Status *domain.OrderStatus `json:"status"`
}

func (s *Server) cartResponse(c *gin.Context, status int) {
	lines, err := s.store.ListCart()
	if err != nil {
		respondError(c, err)
		return
	}

	resp := cartResponse{Lines: lines}
	if resp.Lines == nil {
		resp.Lines = []domain.CartLine{}
	}
	for _, l := range lines {
		resp.Total += l.Subtotal()
	}
	c.JSON(status, resp)
}

func (s *Server) getCart(c *gin.Context) {
	s.cartResponse(c, http.StatusOK)
}

func (s *Server) addToCart(c *gin.Context) {
	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "code is required")
		return
	}

	if err := s.store.AddToCart(req.Code); err != nil {
		respondError(c, err)
		return
	}
	s.cartResponse(c, http.StatusCreated)
}

func (s *Server) removeFromCart(c *gin.Context) {
	code := c.Param("code")
	removed, err := s.store.RemoveFromCart(code)
	if err != nil {
		respondError(c, err)
		return
	}
	if !removed {
		notFound(c, "cart item", code)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) clearCart(c *gin.Context) {
	if err := s.store.ClearCart(); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) checkout(c *gin.Context) {
	o, err := s.store.Checkout()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, o)
}

func (s *Server) listOrders(c *gin.Context) {
	orders, err := s.store.ListOrders()
	if err != nil {
		respondError(c, err)
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	c.JSON(http.StatusOK, orders)
}

func (s *Server) getOrder(c *gin.Context) {
	id := c.Param("id")
	o, found, err := s.store.GetOrder(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !found {
		notFound(c, "order", id)
		return
	}
	c.JSON(http.StatusOK, o)
}

func (s *Server) setOrderStatus(c *gin.Context) {
	id := c.Param("id")

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == nil {
		badRequest(c, "status must be one of processing, shipped, delivered, cancelled")
		return
	}

	updated, err := s.store.SetOrderStatus(id, *req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	if !updated {
		notFound(c, "order", id)
		return
	}

	o, _, err := s.store.GetOrder(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}
