package services

import (
	"fmt"

	"hms/constants"
	"hms/dto"
	"hms/errors"
	"hms/models"
	"hms/services/logger"
	"hms/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Sai số cho phép khi so sánh tổng thanh toán với tổng hóa đơn,
// tránh từ chối lần thanh toán cuối vì lệch 1 cent do làm tròn.
var overpaymentEpsilon = decimal.RequireFromString("0.01")

// BillingService quản lý invoice và payment. Tổng tiền luôn là số thập
// phân chính xác; tax lấy từ setting tại thời điểm lập hóa đơn và đóng
// băng trên hàng invoice.
type BillingService struct {
	db       *gorm.DB
	log      logger.Logger
	settings *SettingService
}

type BillingServiceOptions struct {
	DB       *gorm.DB
	Logger   logger.Logger
	Settings *SettingService
}

func NewBillingService(opts BillingServiceOptions) *BillingService {
	if opts.Logger == nil {
		opts.Logger = logger.NewNamedLogger("billing", logger.InfoLevel)
	}
	return &BillingService{db: opts.DB, log: opts.Logger, settings: opts.Settings}
}

// ComputeTax tính thuế trên subtotal theo tỷ lệ hiện hành, làm tròn 2 chữ số
func ComputeTax(subtotal, taxRate decimal.Decimal) decimal.Decimal {
	return RoundMoney(subtotal.Mul(taxRate))
}

// NextInvoiceStatus quyết định status invoice từ tổng đã trả so với total
func NextInvoiceStatus(paidSum, total decimal.Decimal) string {
	switch {
	case paidSum.GreaterThanOrEqual(total):
		return constants.InvoiceStatusPaid
	case paidSum.GreaterThan(decimal.Zero):
		return constants.InvoiceStatusPartial
	default:
		return constants.InvoiceStatusUnpaid
	}
}

// ExceedsTotal kiểm tra một khoản thanh toán có vượt quá phần còn lại
// của hóa đơn không, với dung sai làm tròn 1 cent
func ExceedsTotal(paidSum, amount, total decimal.Decimal) bool {
	return paidSum.Add(amount).GreaterThan(total.Add(overpaymentEpsilon))
}

// CheckPaymentCap trả về lỗi validation khi khoản thanh toán vượt quá
// phần còn lại của hóa đơn, cùng nhóm lỗi với số tiền không hợp lệ.
func CheckPaymentCap(paidSum, amount, total decimal.Decimal) error {
	if ExceedsTotal(paidSum, amount, total) {
		return errors.Validation(fmt.Sprintf(
			"payment of %s exceeds invoice balance (paid %s of %s)",
			amount.StringFixed(2), paidSum.StringFixed(2), total.StringFixed(2)))
	}
	return nil
}

// CreateInvoice lập hóa đơn cho một reservation: subtotal là tổng giá
// phòng, tax tính từ setting tax_rate hiện hành.
func (s *BillingService) CreateInvoice(req *dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	var created models.Invoice

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		var reservation models.Reservation
		if err := tx.First(&reservation, req.ReservationID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.NotFound("reservation")
			}
			return errors.Internal(err)
		}
		if reservation.Status == constants.ReservationStatusCancelled {
			return errors.Conflict("cannot invoice a cancelled reservation")
		}

		taxRate := s.settings.TaxRate(tx)

		subtotal := reservation.TotalPrice
		tax := ComputeTax(subtotal, taxRate)
		invoice := models.Invoice{
			ReservationID: reservation.ID,
			Subtotal:      subtotal,
			Tax:           tax,
			Total:         subtotal.Add(tax),
			Status:        constants.InvoiceStatusUnpaid,
		}
		if err := tx.Create(&invoice).Error; err != nil {
			return errors.Internal(err)
		}
		created = invoice
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.log.Info("invoice %d created for reservation %d, total %s", created.ID, created.ReservationID, created.Total.StringFixed(2))
	resp := s.toInvoiceResponse(&created)
	return &resp, nil
}

// GetInvoice trả về invoice kèm payments và thông tin reservation
func (s *BillingService) GetInvoice(id uint) (*dto.InvoiceResponse, error) {
	var invoice models.Invoice
	err := s.db.Preload("Payments").
		Preload("Reservation").
		Preload("Reservation.Guest").
		Preload("Reservation.RoomType").
		Preload("Reservation.Room").
		First(&invoice, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NotFound("invoice")
		}
		return nil, errors.Internal(err)
	}

	resp := s.toInvoiceResponse(&invoice)
	resp.PaidSum = paidSum(invoice.Payments).StringFixed(2)
	return &resp, nil
}

// ListInvoices trả về invoices phân trang, lọc theo status nếu có
func (s *BillingService) ListInvoices(page, limit int, status string) ([]dto.InvoiceResponse, int, error) {
	query := s.db.Model(&models.Invoice{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Internal(err)
	}

	var invoices []models.Invoice
	err := query.Preload("Reservation").Preload("Reservation.Guest").
		Order("created_at DESC").
		Offset(page * limit).
		Limit(limit).
		Find(&invoices).Error
	if err != nil {
		return nil, 0, errors.Internal(err)
	}

	responses := make([]dto.InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		responses = append(responses, s.toInvoiceResponse(&invoices[i]))
	}
	return responses, int(total), nil
}

// RecordPayment ghi nhận một khoản thanh toán cho invoice. Hàng invoice
// được khóa FOR UPDATE để tổng đã trả không bị hai payment song song
// cùng vượt total.
func (s *BillingService) RecordPayment(invoiceID uint, req *dto.RecordPaymentRequest) (*dto.PaymentResponse, error) {
	amount, err := validator.ParsePositiveMoney(req.Amount)
	if err != nil {
		return nil, err
	}
	if req.Method == "" {
		return nil, errors.Validation("payment method is required")
	}

	var created models.Payment
	var invoiceStatus string

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		var invoice models.Invoice
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&invoice, invoiceID).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.NotFound("invoice")
			}
			return errors.Internal(err)
		}

		var payments []models.Payment
		if err := tx.Where("invoice_id = ?", invoice.ID).Find(&payments).Error; err != nil {
			return errors.Internal(err)
		}
		paid := paidSum(payments)

		if err := CheckPaymentCap(paid, amount, invoice.Total); err != nil {
			return err
		}

		reference := req.Reference
		if reference == "" {
			reference = uuid.New().String()
		}

		payment := models.Payment{
			InvoiceID: invoice.ID,
			Amount:    RoundMoney(amount),
			Method:    req.Method,
			Reference: reference,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return errors.Internal(err)
		}

		invoiceStatus = NextInvoiceStatus(paid.Add(payment.Amount), invoice.Total)
		if invoiceStatus != invoice.Status {
			err := tx.Model(&models.Invoice{}).
				Where("id = ?", invoice.ID).
				Update("status", invoiceStatus).Error
			if err != nil {
				return errors.Internal(err)
			}
		}
		created = payment
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.log.Info("payment %d of %s recorded on invoice %d (%s)", created.ID, created.Amount.StringFixed(2), invoiceID, invoiceStatus)
	BroadcastActivity("payment", fmt.Sprintf("Payment of %s received", created.Amount.StringFixed(2)))

	return &dto.PaymentResponse{
		ID:            created.ID,
		InvoiceID:     created.InvoiceID,
		Amount:        created.Amount.StringFixed(2),
		Method:        created.Method,
		Reference:     created.Reference,
		PaidAt:        created.PaidAt.Format(constants.DateTimeFormat),
		InvoiceStatus: invoiceStatus,
	}, nil
}

// ListPayments trả về các payment của một invoice
func (s *BillingService) ListPayments(invoiceID uint) ([]dto.PaymentResponse, error) {
	var invoice models.Invoice
	if err := s.db.First(&invoice, invoiceID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NotFound("invoice")
		}
		return nil, errors.Internal(err)
	}

	var payments []models.Payment
	err := s.db.Where("invoice_id = ?", invoiceID).Order("paid_at ASC").Find(&payments).Error
	if err != nil {
		return nil, errors.Internal(err)
	}

	responses := make([]dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		responses = append(responses, dto.PaymentResponse{
			ID:        p.ID,
			InvoiceID: p.InvoiceID,
			Amount:    p.Amount.StringFixed(2),
			Method:    p.Method,
			Reference: p.Reference,
			PaidAt:    p.PaidAt.Format(constants.DateTimeFormat),
		})
	}
	return responses, nil
}

func paidSum(payments []models.Payment) decimal.Decimal {
	sum := decimal.Zero
	for _, p := range payments {
		sum = sum.Add(p.Amount)
	}
	return sum
}

func (s *BillingService) toInvoiceResponse(invoice *models.Invoice) dto.InvoiceResponse {
	resp := dto.InvoiceResponse{
		ID:            invoice.ID,
		ReservationID: invoice.ReservationID,
		Subtotal:      invoice.Subtotal.StringFixed(2),
		Tax:           invoice.Tax.StringFixed(2),
		Total:         invoice.Total.StringFixed(2),
		Status:        invoice.Status,
		CreatedAt:     invoice.CreatedAt.Format(constants.DateTimeFormat),
		UpdatedAt:     invoice.UpdatedAt.Format(constants.DateTimeFormat),
	}
	if invoice.Reservation.ID != 0 {
		resp.CheckIn = invoice.Reservation.CheckIn.Format(constants.DateFormat)
		resp.CheckOut = invoice.Reservation.CheckOut.Format(constants.DateFormat)
		if invoice.Reservation.Guest.ID != 0 {
			resp.GuestName = invoice.Reservation.Guest.Name
		}
		if invoice.Reservation.RoomType.ID != 0 {
			resp.RoomTypeName = invoice.Reservation.RoomType.Name
		}
		if invoice.Reservation.Room != nil {
			resp.RoomNumber = invoice.Reservation.Room.Number
		}
	}
	return resp
}
