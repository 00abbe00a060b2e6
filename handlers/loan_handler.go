package handlers

import (
	"trusttrade_backend/internal/metrics"
	"trusttrade_backend/models"
	"trusttrade_backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type LoanHandler struct {
	DB *gorm.DB
}

func NewLoanHandler(db *gorm.DB) *LoanHandler {
	return &LoanHandler{DB: db}
}

// CreateLoanRequest
type CreateLoanRequest struct {
	Amount float64 `json:"amount"`
}

// LoanResponse enriches a loan request with the vendor fields investors see.
type LoanResponse struct {
	models.LoanRequest
	VendorName       string   `json:"vendor_name"`
	VendorTrustScore *float64 `json:"vendor_trust_score,omitempty"`
}

// CreateLoan - POST /api/loans (vendor only)
func (h *LoanHandler) CreateLoan(c *fiber.Ctx) error {
	var req CreateLoanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if req.Amount <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Amount must be positive"})
	}

	loan := models.LoanRequest{
		VendorID:        utils.UserID(c),
		Amount:          req.Amount,
		RepaymentStatus: models.RepaymentStatusPending,
	}

	if err := h.DB.Create(&loan).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not create loan request"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Loan request created", "data": loan})
}

// GetOpenLoans - GET /api/loans/open
// Pending requests that nobody has funded yet, with vendor name and trust
// score attached via a single batch fetch.
func (h *LoanHandler) GetOpenLoans(c *fiber.Ctx) error {
	var loans []models.LoanRequest
	if err := h.DB.Where("repayment_status = ? AND investor_id IS NULL", models.RepaymentStatusPending).
		Order("created_at desc").
		Find(&loans).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch loan requests"})
	}

	enriched, err := h.enrich(loans)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch loan requests"})
	}
	return c.JSON(fiber.Map{"data": enriched})
}

// FundLoan - POST /api/loans/:id/fund (investor only)
// First successful funder wins: the investor is set with a conditional
// update so a second concurrent fund call affects zero rows and fails.
func (h *LoanHandler) FundLoan(c *fiber.Ctx) error {
	userID := utils.UserID(c)

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid loan request ID"})
	}

	var loan models.LoanRequest
	if err := h.DB.First(&loan, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Loan request not found"})
	}
	if loan.InvestorID != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Loan request is already funded"})
	}

	res := h.DB.Model(&models.LoanRequest{}).
		Where("id = ? AND investor_id IS NULL", loan.ID).
		Update("investor_id", userID)
	if res.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fund loan request"})
	}
	if res.RowsAffected == 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Loan request is already funded"})
	}

	metrics.LoansFunded.Inc()
	loan.InvestorID = &userID
	return c.JSON(fiber.Map{"message": "Loan funded", "data": loan})
}

// GetMyInvestments - GET /api/my-investments
func (h *LoanHandler) GetMyInvestments(c *fiber.Ctx) error {
	var loans []models.LoanRequest
	if err := h.DB.Where("investor_id = ?", utils.UserID(c)).
		Order("created_at desc").
		Find(&loans).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch investments"})
	}

	enriched, err := h.enrich(loans)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch investments"})
	}
	return c.JSON(fiber.Map{"data": enriched})
}

func (h *LoanHandler) enrich(loans []models.LoanRequest) ([]LoanResponse, error) {
	vendorIDs := make([]uint, 0, len(loans))
	for _, loan := range loans {
		vendorIDs = append(vendorIDs, loan.VendorID)
	}

	vendors := make(map[uint]models.User, len(vendorIDs))
	if len(vendorIDs) > 0 {
		var users []models.User
		if err := h.DB.Where("id IN ?", vendorIDs).Find(&users).Error; err != nil {
			return nil, err
		}
		for _, u := range users {
			vendors[u.ID] = u
		}
	}

	enriched := make([]LoanResponse, 0, len(loans))
	for _, loan := range loans {
		resp := LoanResponse{LoanRequest: loan, VendorName: "Unknown Vendor"}
		if vendor, ok := vendors[loan.VendorID]; ok {
			resp.VendorName = vendor.Name
			resp.VendorTrustScore = vendor.TrustScore
		}
		enriched = append(enriched, resp)
	}
	return enriched, nil
}
