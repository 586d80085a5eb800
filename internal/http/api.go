package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"budget-tracker/internal/auth"
	"budget-tracker/internal/domain"
	"budget-tracker/internal/repository"
	"budget-tracker/internal/service"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	users  service.UserService
	ledger service.LedgerService
	goals  service.GoalService
	tokens *auth.TokenManager
}

func NewHandler(users service.UserService, ledger service.LedgerService, goals service.GoalService, tokens *auth.TokenManager) *Handler {
	return &Handler{
		users:  users,
		ledger: ledger,
		goals:  goals,
		tokens: tokens,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(cors.Default())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.POST("/register", h.register)
	router.POST("/login", h.login)

	protected := router.Group("/", authRequired(h.tokens))
	{
		protected.GET("/transactions", h.listTransactions)
		protected.POST("/transactions", h.addTransaction)
		protected.DELETE("/transactions/:id", h.deleteTransaction)
		protected.GET("/goals", h.listGoals)
		protected.POST("/goals", h.addGoal)
		protected.DELETE("/goals/:id", h.deleteGoal)
		protected.GET("/balance", h.balance)
	}
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type createTransactionRequest struct {
	Type        string   `json:"type" binding:"required"`
	Description string   `json:"description" binding:"required,max=100"`
	Amount      *float64 `json:"amount" binding:"required"`
	Category    string   `json:"category" binding:"required,max=50"`
}

type createGoalRequest struct {
	Name         string   `json:"name" binding:"required,max=100"`
	TargetAmount *float64 `json:"target_amount" binding:"required"`
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	if _, err := h.users.Register(c.Request.Context(), req.Username, req.Password); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "user created"})
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": service.ErrInvalidCredentials.Error()})
		return
	}

	token, user, err := h.users.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"username":     user.Username,
	})
}

func (h *Handler) listTransactions(c *gin.Context) {
	txs, err := h.ledger.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	resp := make([]TransactionResponse, len(txs))
	for i := range txs {
		resp[i] = transactionToResponse(txs[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) addTransaction(c *gin.Context) {
	var req createTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type, description, amount and category are required"})
		return
	}

	tx, err := h.ledger.Add(
		c.Request.Context(),
		currentUserID(c),
		domain.TransactionKind(req.Type),
		req.Description,
		*req.Amount,
		req.Category,
	)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "transaction added",
		"transaction": transactionToResponse(*tx),
	})
}

func (h *Handler) deleteTransaction(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.ledger.Delete(c.Request.Context(), currentUserID(c), id); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "transaction deleted"})
}

func (h *Handler) listGoals(c *gin.Context) {
	goals, err := h.goals.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	resp := make([]GoalResponse, len(goals))
	for i := range goals {
		resp[i] = goalToResponse(goals[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) addGoal(c *gin.Context) {
	var req createGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and target_amount are required"})
		return
	}

	goal, err := h.goals.Add(c.Request.Context(), currentUserID(c), req.Name, *req.TargetAmount)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, goalToResponse(*goal))
}

func (h *Handler) deleteGoal(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.goals.Delete(c.Request.Context(), currentUserID(c), id); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "goal deleted"})
}

func (h *Handler) balance(c *gin.Context) {
	balance, err := h.ledger.Balance(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"income":  balance.Income,
		"expense": balance.Expense,
		"balance": balance.Net,
	})
}

// parseID reads the :id path parameter. A non-numeric id cannot name an
// existing resource, so it maps to 404 like any other missing record.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": repository.ErrNotFound.Error()})
		return 0, false
	}
	return id, true
}

// respondError maps service and repository errors to HTTP statuses. Anything
// unrecognized becomes an opaque 500 so storage errors never reach clients.
func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUserAlreadyExists):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, auth.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": repository.ErrNotFound.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

type TransactionResponse struct {
	ID          int64   `json:"id"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Date        string  `json:"date"`
}

type GoalResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	TargetAmount  float64 `json:"target_amount"`
	CurrentAmount float64 `json:"current_amount"`
	Progress      float64 `json:"progress"`
}

func transactionToResponse(tx domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          tx.ID,
		Type:        string(tx.Kind),
		Description: tx.Description,
		Amount:      tx.Amount,
		Category:    tx.Category,
		// time of day is stored but not exposed
		Date: tx.Date.UTC().Format("2006-01-02"),
	}
}

func goalToResponse(goal domain.Goal) GoalResponse {
	return GoalResponse{
		ID:            goal.ID,
		Name:          goal.Name,
		TargetAmount:  goal.TargetAmount,
		CurrentAmount: goal.CurrentAmount,
		Progress:      goal.Progress(),
	}
}
