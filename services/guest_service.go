package services

import (
	stderrors "errors"
	"sort"
	"strings"

	"hms/constants"
	"hms/dto"
	"hms/errors"
	"hms/models"
	"hms/services/logger"
	"hms/validator"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GuestService quản lý danh bạ khách: resolve theo email, CRUD và tìm kiếm
type GuestService struct {
	db  *gorm.DB
	log logger.Logger
}

type GuestServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewGuestService(opts GuestServiceOptions) *GuestService {
	if opts.Logger == nil {
		opts.Logger = logger.NewNamedLogger("guests", logger.InfoLevel)
	}
	return &GuestService{db: opts.DB, log: opts.Logger}
}

// ResolveOrCreate tìm guest theo email, tạo mới nếu chưa có.
// Idempotent dưới truy cập song song: insert đi qua ON CONFLICT DO NOTHING
// trên unique index email, sau đó đọc lại — hai request cùng email luôn
// hội tụ về cùng một guest id.
func (s *GuestService) ResolveOrCreate(tx *gorm.DB, name, email, phone string) (*models.Guest, error) {
	if err := validator.ValidateEmail(email); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errors.NewAppError(errors.ErrCodeRequiredField, "guest name is required", nil)
	}

	guest := models.Guest{Name: name, Email: email, Phone: phone}
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}).Create(&guest).Error
	if err != nil {
		return nil, errors.Internal(err)
	}

	// ID = 0 nghĩa là email đã tồn tại, insert bị bỏ qua
	if guest.ID == 0 {
		if err := tx.Where("email = ?", email).First(&guest).Error; err != nil {
			return nil, errors.Internal(err)
		}
	}

	return &guest, nil
}

// Create tạo guest mới từ request đầy đủ. Email trùng là Conflict,
// khác với ResolveOrCreate nơi trùng email là bình thường.
func (s *GuestService) Create(req *dto.CreateGuestRequest) (*models.Guest, error) {
	if err := validator.ValidateCreateGuest(req); err != nil {
		return nil, err
	}

	guest := models.Guest{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		Notes:   req.Notes,
	}
	// Không pre-check trùng email: hai request cùng lúc đều qua được
	// pre-check. Unique index trên email mới là chốt chặn cuối.
	if err := s.db.Create(&guest).Error; err != nil {
		return nil, translateGuestWriteErr(err)
	}

	s.log.Info("guest %d (%s) created", guest.ID, guest.Email)
	return &guest, nil
}

// GetByID lấy guest theo ID
func (s *GuestService) GetByID(id uint) (*models.Guest, error) {
	var guest models.Guest
	if err := s.db.First(&guest, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NotFound("guest")
		}
		return nil, errors.Internal(err)
	}
	return &guest, nil
}

// List trả về danh sách guest có phân trang
func (s *GuestService) List(page, limit int) ([]models.Guest, int, error) {
	var total int64
	if err := s.db.Model(&models.Guest{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Internal(err)
	}

	var guests []models.Guest
	err := s.db.Order("created_at DESC").
		Offset(page * limit).
		Limit(limit).
		Find(&guests).Error
	if err != nil {
		return nil, 0, errors.Internal(err)
	}
	return guests, int(total), nil
}

// Update cập nhật một phần thông tin guest
func (s *GuestService) Update(id uint, req *dto.UpdateGuestRequest) (*models.Guest, error) {
	guest, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		if err := validator.ValidateEmail(*req.Email); err != nil {
			return nil, err
		}
		guest.Email = *req.Email
	}
	if req.Name != nil {
		guest.Name = *req.Name
	}
	if req.Phone != nil {
		guest.Phone = *req.Phone
	}
	if req.Address != nil {
		guest.Address = *req.Address
	}
	if req.Notes != nil {
		guest.Notes = *req.Notes
	}

	if err := s.db.Save(guest).Error; err != nil {
		return nil, translateGuestWriteErr(err)
	}
	return guest, nil
}

// translateGuestWriteErr dịch lỗi vi phạm unique index email thành Conflict,
// các lỗi DB khác giữ nguyên là Internal.
func translateGuestWriteErr(err error) error {
	if stderrors.Is(err, gorm.ErrDuplicatedKey) {
		return errors.Conflict("a guest with this email already exists")
	}
	return errors.Internal(err)
}

// Delete xóa guest, từ chối khi còn reservation đang hoạt động
func (s *GuestService) Delete(id uint) error {
	guest, err := s.GetByID(id)
	if err != nil {
		return err
	}

	var active int64
	err = s.db.Model(&models.Reservation{}).
		Where("guest_id = ?", id).
		Where("status IN ?", []string{constants.ReservationStatusConfirmed, constants.ReservationStatusCheckedIn}).
		Count(&active).Error
	if err != nil {
		return errors.Internal(err)
	}
	if active > 0 {
		return errors.Conflict("cannot delete guest with active reservations")
	}

	if err := s.db.Delete(guest).Error; err != nil {
		return errors.Internal(err)
	}
	return nil
}

// normalizeInput chuẩn hóa chuỗi để so khớp
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// createMatcher tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// unitCostOptions cho khoảng cách levenshtein cổ điển: thay thế giá 1.
// DefaultOptions tính thay thế giá 2 nên tỉ lệ distance/maxLen vượt quá 1.
var unitCostOptions = levenshtein.Options{
	InsCost: 1,
	DelCost: 1,
	SubCost: 1,
	Matches: levenshtein.IdenticalRunes,
}

// calculateSimilarity tính độ tương đồng giữa hai chuỗi theo levenshtein,
// kết quả trong [0, 1].
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), unitCostOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/maxLen
}

// scoreGuest tính điểm phù hợp của một guest với query
func scoreGuest(query string, guest models.Guest, cmName *closestmatch.ClosestMatch) int {
	score := 0
	name := normalizeInput(guest.Name)
	email := normalizeInput(guest.Email)

	if strings.Contains(name, query) || strings.Contains(email, query) {
		score += 20
	}
	if cmName.Closest(query) == name {
		score += 13
	}
	if sim := calculateSimilarity(query, name); sim > 0.7 {
		score += int(sim * 10)
	}
	return score
}

// Search tìm guest theo tên/email gần đúng, xếp theo điểm khớp giảm dần
func (s *GuestService) Search(query string, limit int) ([]dto.GuestSearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, errors.Validation("search query is required")
	}
	if limit <= 0 {
		limit = 10
	}

	var guests []models.Guest
	if err := s.db.Find(&guests).Error; err != nil {
		return nil, errors.Internal(err)
	}

	names := make([]string, 0, len(guests))
	for _, g := range guests {
		names = append(names, normalizeInput(g.Name))
	}
	cmName := createMatcher(names)

	normalizedQuery := normalizeInput(query)
	var results []dto.GuestSearchResult
	for _, g := range guests {
		score := scoreGuest(normalizedQuery, g, cmName)
		if score <= 0 {
			continue
		}
		results = append(results, dto.GuestSearchResult{
			Guest: ToGuestResponse(&g),
			Score: score,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// ToGuestResponse chuyển model guest sang DTO response
func ToGuestResponse(g *models.Guest) dto.GuestResponse {
	return dto.GuestResponse{
		ID:        g.ID,
		Name:      g.Name,
		Email:     g.Email,
		Phone:     g.Phone,
		Address:   g.Address,
		Notes:     g.Notes,
		CreatedAt: g.CreatedAt.Format(constants.DateTimeFormat),
		UpdatedAt: g.UpdatedAt.Format(constants.DateTimeFormat),
	}
}
