package server

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hdbplan/hdbplan/internal/calculation"
	"github.com/hdbplan/hdbplan/internal/config"
	"github.com/hdbplan/hdbplan/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const maxRequestBytes = 1 << 20

type handler struct {
	logger *zap.Logger
	calc   *calculation.Calculator
	parser *config.InputParser
	cache  CacheRepository
	now    func() time.Time
}

// NewHandler constructs the HTTP handler serving the calculation API.
// A nil limiter disables rate limiting; a nil cache falls back to the
// in-memory backend.
func NewHandler(logger *zap.Logger, policy *domain.Policy, cache CacheRepository, limiter *RateLimiter) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cache == nil {
		cache = NewMemoryCache()
	}

	h := &handler{
		logger: logger,
		calc:   calculation.NewCalculator(policy),
		parser: config.NewInputParser(),
		cache:  cache,
		now:    time.Now,
	}

	limited := func(hf http.HandlerFunc) http.Handler {
		if limiter == nil {
			return hf
		}
		return RateLimitMiddleware(limiter, hf)
	}

	mux := http.NewServeMux()
	mux.Handle("/api/v1/eligibility", limited(h.handleEligibility))
	mux.Handle("/api/v1/affordability", limited(h.handleAffordability))
	mux.Handle("/api/v1/max-price", limited(h.handleMaxPrice))
	mux.Handle("/api/v1/tenure/recommend", limited(h.handleTenureRecommend))
	mux.Handle("/api/v1/tenure/table", limited(h.handleTenureTable))
	mux.Handle("/api/v1/savings-health", limited(h.handleSavingsHealth))
	mux.Handle("/api/v1/plan", limited(h.handlePlan))
	mux.Handle("/api/v1/policy", limited(h.handlePolicy))
	mux.HandleFunc("/healthz", h.handleHealthz)

	return mux
}

type eligibilityRequest struct {
	Income       decimal.Decimal    `json:"income"`
	Commitments  domain.Commitments `json:"commitments"`
	TenureYears  int                `json:"tenure_years,omitempty"`
	InterestRate *decimal.Decimal   `json:"interest_rate,omitempty"`
}

func (h *handler) handleEligibility(w http.ResponseWriter, r *http.Request) {
	var req eligibilityRequest
	if !h.decode(w, r, &req, "server.handleEligibility") {
		return
	}

	if req.Income.IsNegative() {
		h.respondError(w, http.StatusBadRequest, "income cannot be negative", "server.handleEligibility")
		return
	}

	tenure := req.TenureYears
	if tenure == 0 {
		tenure = h.calc.Policy.Loan.MaxTenureYears
	}
	if tenure < h.calc.Policy.Loan.MinTenureYears || tenure > h.calc.Policy.Loan.MaxTenureYears {
		h.respondError(w, http.StatusBadRequest,
			fmt.Sprintf("tenure must be between %d and %d years",
				h.calc.Policy.Loan.MinTenureYears, h.calc.Policy.Loan.MaxTenureYears),
			"server.handleEligibility")
		return
	}

	rate := h.calc.Policy.Loan.InterestRate
	if req.InterestRate != nil {
		rate = *req.InterestRate
	}
	if rate.IsNegative() {
		h.respondError(w, http.StatusBadRequest, "interest rate cannot be negative", "server.handleEligibility")
		return
	}

	h.writeJSON(w, http.StatusOK, h.calc.EligibilityAt(req.Income, req.Commitments, tenure, rate))
}

type affordabilityRequest struct {
	Price         decimal.Decimal    `json:"price"`
	Income        decimal.Decimal    `json:"income"`
	Commitments   domain.Commitments `json:"commitments"`
	ProjectedCPF  decimal.Decimal    `json:"projected_cpf_oa"`
	ProjectedCash decimal.Decimal    `json:"projected_cash"`
}

func (h *handler) handleAffordability(w http.ResponseWriter, r *http.Request) {
	var req affordabilityRequest
	if !h.decode(w, r, &req, "server.handleAffordability") {
		return
	}

	if !req.Price.IsPositive() {
		h.respondError(w, http.StatusBadRequest, "price must be positive", "server.handleAffordability")
		return
	}
	if req.Income.IsNegative() {
		h.respondError(w, http.StatusBadRequest, "income cannot be negative", "server.handleAffordability")
		return
	}

	eligibility := h.calc.Eligibility(req.Income, req.Commitments)
	h.writeJSON(w, http.StatusOK, h.calc.Affordability(req.Price, eligibility, req.ProjectedCPF, req.ProjectedCash))
}

type maxPriceRequest struct {
	Income         decimal.Decimal    `json:"income"`
	Commitments    domain.Commitments `json:"commitments"`
	AvailableFunds decimal.Decimal    `json:"available_funds"`
}

type maxPriceResponse struct {
	MaxAffordablePrice decimal.Decimal        `json:"max_affordable_price"`
	Eligibility        domain.LoanEligibility `json:"eligibility"`
}

func (h *handler) handleMaxPrice(w http.ResponseWriter, r *http.Request) {
	var req maxPriceRequest
	if !h.decode(w, r, &req, "server.handleMaxPrice") {
		return
	}

	if req.Income.IsNegative() {
		h.respondError(w, http.StatusBadRequest, "income cannot be negative", "server.handleMaxPrice")
		return
	}
	if req.AvailableFunds.IsNegative() {
		h.respondError(w, http.StatusBadRequest, "available funds cannot be negative", "server.handleMaxPrice")
		return
	}

	eligibility := h.calc.Eligibility(req.Income, req.Commitments)
	h.writeJSON(w, http.StatusOK, maxPriceResponse{
		MaxAffordablePrice: h.calc.MaxAffordablePrice(eligibility, req.AvailableFunds),
		Eligibility:        eligibility,
	})
}

type tenureRecommendRequest struct {
	LoanAmount     decimal.Decimal  `json:"loan_amount"`
	PaymentCeiling decimal.Decimal  `json:"payment_ceiling"`
	ComfortBuffer  decimal.Decimal  `json:"comfort_buffer"`
	InterestRate   *decimal.Decimal `json:"interest_rate,omitempty"`
}

type tenureRecommendResponse struct {
	Recommended *domain.TenureAnalysis `json:"recommended"`
}

func (h *handler) handleTenureRecommend(w http.ResponseWriter, r *http.Request) {
	var req tenureRecommendRequest
	if !h.decode(w, r, &req, "server.handleTenureRecommend") {
		return
	}

	if !req.LoanAmount.IsPositive() {
		h.respondError(w, http.StatusBadRequest, "loan amount must be positive", "server.handleTenureRecommend")
		return
	}

	rate := h.calc.Policy.Loan.InterestRate
	if req.InterestRate != nil {
		rate = *req.InterestRate
	}

	// A nil recommendation is a valid answer: no tenure fits.
	h.writeJSON(w, http.StatusOK, tenureRecommendResponse{
		Recommended: h.calc.ShortestTenure(req.LoanAmount, req.PaymentCeiling, req.ComfortBuffer, rate),
	})
}

type tenureTableRequest struct {
	LoanAmount     decimal.Decimal  `json:"loan_amount"`
	PaymentCeiling decimal.Decimal  `json:"payment_ceiling"`
	InterestRate   *decimal.Decimal `json:"interest_rate,omitempty"`
	Tenures        []int            `json:"tenures,omitempty"`
}

type tenureTableResponse struct {
	Table []domain.TenureAnalysis `json:"table"`
}

func (h *handler) handleTenureTable(w http.ResponseWriter, r *http.Request) {
	var req tenureTableRequest
	if !h.decode(w, r, &req, "server.handleTenureTable") {
		return
	}

	if !req.LoanAmount.IsPositive() {
		h.respondError(w, http.StatusBadRequest, "loan amount must be positive", "server.handleTenureTable")
		return
	}

	rate := h.calc.Policy.Loan.InterestRate
	if req.InterestRate != nil {
		rate = *req.InterestRate
	}

	var table []domain.TenureAnalysis
	if len(req.Tenures) > 0 {
		table = h.calc.KeyTenureTable(req.LoanAmount, req.PaymentCeiling, rate, req.Tenures)
	} else {
		table = h.calc.TenureTable(req.LoanAmount, req.PaymentCeiling, rate)
	}

	h.writeJSON(w, http.StatusOK, tenureTableResponse{Table: table})
}

type savingsHealthRequest struct {
	Income         decimal.Decimal `json:"income"`
	MonthlySavings decimal.Decimal `json:"monthly_savings"`
}

func (h *handler) handleSavingsHealth(w http.ResponseWriter, r *http.Request) {
	var req savingsHealthRequest
	if !h.decode(w, r, &req, "server.handleSavingsHealth") {
		return
	}

	h.writeJSON(w, http.StatusOK, h.calc.SavingsHealth(req.Income, req.MonthlySavings))
}

func (h *handler) handlePlan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "failed to read request body", "server.handlePlan")
		return
	}

	var household domain.Household
	if err := json.Unmarshal(body, &household); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body", "server.handlePlan")
		return
	}

	if err := h.parser.ValidateHousehold(&household); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), "server.handlePlan")
		return
	}

	key := planCacheKey(body)
	if cached, ok := h.cache.Get(key); ok {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Cache", "hit")
		_, _ = w.Write([]byte(cached))
		return
	}

	plan := h.calc.BuildPlan(&household, h.now())
	data, err := json.Marshal(plan)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "failed to encode plan", "server.handlePlan")
		return
	}

	if err := h.cache.Set(key, string(data)); err != nil {
		h.logger.Warn("failed to cache plan response",
			zap.String("op", "server.handlePlan"),
			zap.Error(err),
		)
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}

func (h *handler) handlePolicy(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, h.calc.Policy)
}

func (h *handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// decode enforces POST, caps the body, and unmarshals the request.
// It writes the error response itself and reports success.
func (h *handler) decode(w http.ResponseWriter, r *http.Request, into interface{}, op string) bool {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return false
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)
	if err := json.NewDecoder(r.Body).Decode(into); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body", op)
		return false
	}
	return true
}

func planCacheKey(body []byte) string {
	sum := sha256.Sum256(body)
	return "plan:" + hex.EncodeToString(sum[:])
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
