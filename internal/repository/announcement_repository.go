package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/noah-isme/banner-admin-api/internal/dto"
	"github.com/noah-isme/banner-admin-api/internal/models"
)

const announcementColumns = `id, shop_id, type, title, size, height_px, width_percent, start_date, end_date, close_button_position, is_active, created_at, updated_at`

const (
	insertAnnouncementQuery = `INSERT INTO announcements (id, shop_id, type, title, size, height_px, width_percent, start_date, end_date, close_button_position, is_active, created_at, updated_at)
VALUES (:id, :shop_id, :type, :title, :size, :height_px, :width_percent, :start_date, :end_date, :close_button_position, :is_active, :created_at, :updated_at)`

	insertTextQuery = `INSERT INTO announcement_texts (id, announcement_id, text_message, text_color, font_size, font_type)
VALUES (:id, :announcement_id, :text_message, :text_color, :font_size, :font_type)`

	insertCTAQuery = `INSERT INTO call_to_actions (id, announcement_text_id, cta_type, cta_text, cta_link, button_font_color, button_background_color, font_type, padding_top, padding_right, padding_bottom, padding_left)
VALUES (:id, :announcement_text_id, :cta_type, :cta_text, :cta_link, :button_font_color, :button_background_color, :font_type, :padding_top, :padding_right, :padding_bottom, :padding_left)`

	insertBackgroundQuery = `INSERT INTO banner_backgrounds (id, announcement_id, background_type, color1, color2, color3, pattern, padding_right)
VALUES (:id, :announcement_id, :background_type, :color1, :color2, :color3, :pattern, :padding_right)`

	insertFormFieldQuery = `INSERT INTO banner_form_fields (id, announcement_id, input_type, placeholder, label, is_required, validation_regex)
VALUES (:id, :announcement_id, :input_type, :placeholder, :label, :is_required, :validation_regex)`

	deleteCTAsQuery = `DELETE FROM call_to_actions WHERE announcement_text_id IN (SELECT id FROM announcement_texts WHERE announcement_id = $1)`
)

// AnnouncementRepository provides transactional persistence for announcements
// and their owned rows (texts, call-to-actions, background, form fields and
// page-pattern links).
type AnnouncementRepository struct {
	db *sqlx.DB
}

// NewAnnouncementRepository creates the repository.
func NewAnnouncementRepository(db *sqlx.DB) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

// Create inserts the header row and every owned child row in one transaction.
// Returns the created header row.
func (r *AnnouncementRepository) Create(ctx context.Context, shopID string, in dto.NewAnnouncement) (announcement *models.Announcement, err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin create announcement: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	header := newAnnouncementRow(shopID, in, time.Now().UTC())
	if _, err = tx.NamedExecContext(ctx, insertAnnouncementQuery, header); err != nil {
		return nil, fmt.Errorf("insert announcement: %w", err)
	}

	if err = insertOwnedRows(ctx, tx, header.ID, in.Texts, in.Background, in.Form, in.PagePatterns); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit create announcement: %w", err)
	}
	return &header, nil
}

// GetByID fetches the header plus all owned associations and recomposes the
// nested shape. Returns sql.ErrNoRows when the id does not exist.
func (r *AnnouncementRepository) GetByID(ctx context.Context, id string) (*models.AnnouncementDetail, error) {
	query := fmt.Sprintf(`SELECT %s FROM announcements WHERE id = $1`, announcementColumns)
	var header models.Announcement
	if err := r.db.GetContext(ctx, &header, query, id); err != nil {
		return nil, err
	}

	details, err := r.attachChildren(ctx, []models.Announcement{header})
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

// ListByShop returns a shop's announcements with full associations, most
// recently scheduled first.
func (r *AnnouncementRepository) ListByShop(ctx context.Context, shopID string) ([]models.AnnouncementDetail, error) {
	query := fmt.Sprintf(`SELECT %s FROM announcements WHERE shop_id = $1 ORDER BY start_date DESC`, announcementColumns)
	var headers []models.Announcement
	if err := r.db.SelectContext(ctx, &headers, query, shopID); err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}
	return r.attachChildren(ctx, headers)
}

// ListActive returns the shop's announcements whose active flag is set and
// whose window contains the given instant, both ends inclusive.
func (r *AnnouncementRepository) ListActive(ctx context.Context, shopID string, now time.Time) ([]models.AnnouncementDetail, error) {
	query := fmt.Sprintf(`SELECT %s FROM announcements
WHERE shop_id = $1 AND is_active = true AND start_date <= $2 AND end_date >= $2
ORDER BY start_date DESC`, announcementColumns)
	var headers []models.Announcement
	if err := r.db.SelectContext(ctx, &headers, query, shopID, now); err != nil {
		return nil, fmt.Errorf("list active announcements: %w", err)
	}
	return r.attachChildren(ctx, headers)
}

// Update patches supplied header fields in place and replaces the owned
// collections whose sections are present in the input (replace-all, not
// merge). Returns sql.ErrNoRows when the id does not exist.
func (r *AnnouncementRepository) Update(ctx context.Context, id string, upd dto.AnnouncementUpdate) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin update announcement: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var existingID string
	if err = tx.GetContext(ctx, &existingID, `SELECT id FROM announcements WHERE id = $1`, id); err != nil {
		return err
	}

	if upd.HasHeaderChanges() {
		if err = patchHeader(ctx, tx, id, upd); err != nil {
			return err
		}
	}

	// Replace-all semantics per owned section. Texts are only replaced when
	// a non-empty set is supplied; form and pattern sets are replaced
	// whenever their section is present, including with an empty set.
	if len(upd.Texts) > 0 {
		if _, err = tx.ExecContext(ctx, deleteCTAsQuery, id); err != nil {
			return fmt.Errorf("delete call to actions: %w", err)
		}
		if _, err = tx.ExecContext(ctx, `DELETE FROM announcement_texts WHERE announcement_id = $1`, id); err != nil {
			return fmt.Errorf("delete announcement texts: %w", err)
		}
		if err = insertTexts(ctx, tx, id, upd.Texts); err != nil {
			return err
		}
	}

	if upd.Background != nil {
		if _, err = tx.ExecContext(ctx, `DELETE FROM banner_backgrounds WHERE announcement_id = $1`, id); err != nil {
			return fmt.Errorf("delete banner background: %w", err)
		}
		if _, err = tx.NamedExecContext(ctx, insertBackgroundQuery, newBackgroundRow(id, *upd.Background)); err != nil {
			return fmt.Errorf("insert banner background: %w", err)
		}
	}

	if upd.Form != nil {
		if _, err = tx.ExecContext(ctx, `DELETE FROM banner_form_fields WHERE announcement_id = $1`, id); err != nil {
			return fmt.Errorf("delete banner form fields: %w", err)
		}
		for _, field := range *upd.Form {
			if _, err = tx.NamedExecContext(ctx, insertFormFieldQuery, newFormFieldRow(id, field)); err != nil {
				return fmt.Errorf("insert banner form field: %w", err)
			}
		}
	}

	if upd.PagePatterns != nil {
		if _, err = tx.ExecContext(ctx, `DELETE FROM announcement_page_patterns WHERE announcement_id = $1`, id); err != nil {
			return fmt.Errorf("delete page pattern links: %w", err)
		}
		if err = insertPatternLinks(ctx, tx, id, *upd.PagePatterns); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit update announcement: %w", err)
	}
	return nil
}

// SetActive flips the active flag only. Returns sql.ErrNoRows when the id
// does not exist.
func (r *AnnouncementRepository) SetActive(ctx context.Context, id string, isActive bool) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE announcements SET is_active = $1, updated_at = $2 WHERE id = $3`,
		isActive, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("set announcement active: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check set active rows: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes all owned child rows and the header in child-before-parent
// order, in one transaction. Deleting a missing id is not an error.
func (r *AnnouncementRepository) Delete(ctx context.Context, id string) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete announcement: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	steps := []struct {
		label string
		query string
	}{
		{"delete page pattern links", `DELETE FROM announcement_page_patterns WHERE announcement_id = $1`},
		{"delete call to actions", deleteCTAsQuery},
		{"delete announcement texts", `DELETE FROM announcement_texts WHERE announcement_id = $1`},
		{"delete banner background", `DELETE FROM banner_backgrounds WHERE announcement_id = $1`},
		{"delete banner form fields", `DELETE FROM banner_form_fields WHERE announcement_id = $1`},
		{"delete announcement", `DELETE FROM announcements WHERE id = $1`},
	}
	for _, step := range steps {
		if _, err = tx.ExecContext(ctx, step.query, id); err != nil {
			return fmt.Errorf("%s: %w", step.label, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit delete announcement: %w", err)
	}
	return nil
}

// attachChildren fetches every owned collection for the given headers and
// recomposes the nested shape, grouping child rows by foreign key in memory.
func (r *AnnouncementRepository) attachChildren(ctx context.Context, headers []models.Announcement) ([]models.AnnouncementDetail, error) {
	if len(headers) == 0 {
		return []models.AnnouncementDetail{}, nil
	}

	ids := make([]string, len(headers))
	for i, header := range headers {
		ids[i] = header.ID
	}
	idArray := pq.Array(ids)

	var texts []models.AnnouncementText
	if err := r.db.SelectContext(ctx, &texts,
		`SELECT id, announcement_id, text_message, text_color, font_size, font_type
FROM announcement_texts WHERE announcement_id = ANY($1)`, idArray); err != nil {
		return nil, fmt.Errorf("load announcement texts: %w", err)
	}

	var ctas []models.CallToAction
	if err := r.db.SelectContext(ctx, &ctas,
		`SELECT c.id, c.announcement_text_id, c.cta_type, c.cta_text, c.cta_link, c.button_font_color, c.button_background_color, c.font_type, c.padding_top, c.padding_right, c.padding_bottom, c.padding_left
FROM call_to_actions c
JOIN announcement_texts t ON t.id = c.announcement_text_id
WHERE t.announcement_id = ANY($1)`, idArray); err != nil {
		return nil, fmt.Errorf("load call to actions: %w", err)
	}

	var backgrounds []models.BannerBackground
	if err := r.db.SelectContext(ctx, &backgrounds,
		`SELECT id, announcement_id, background_type, color1, color2, color3, pattern, padding_right
FROM banner_backgrounds WHERE announcement_id = ANY($1)`, idArray); err != nil {
		return nil, fmt.Errorf("load banner backgrounds: %w", err)
	}

	var fields []models.BannerFormField
	if err := r.db.SelectContext(ctx, &fields,
		`SELECT id, announcement_id, input_type, placeholder, label, is_required, validation_regex
FROM banner_form_fields WHERE announcement_id = ANY($1)`, idArray); err != nil {
		return nil, fmt.Errorf("load banner form fields: %w", err)
	}

	var links []patternLink
	if err := r.db.SelectContext(ctx, &links,
		`SELECT l.announcement_id, p.pattern
FROM announcement_page_patterns l
JOIN page_patterns p ON p.id = l.page_pattern_id
WHERE l.announcement_id = ANY($1)`, idArray); err != nil {
		return nil, fmt.Errorf("load page patterns: %w", err)
	}

	return assembleDetails(headers, texts, ctas, backgrounds, fields, links), nil
}

func insertOwnedRows(ctx context.Context, tx *sqlx.Tx, announcementID string, texts []dto.TextInput, background *dto.BackgroundInput, form []dto.FormFieldInput, patterns []string) error {
	if err := insertTexts(ctx, tx, announcementID, texts); err != nil {
		return err
	}

	if background != nil {
		if _, err := tx.NamedExecContext(ctx, insertBackgroundQuery, newBackgroundRow(announcementID, *background)); err != nil {
			return fmt.Errorf("insert banner background: %w", err)
		}
	}

	for _, field := range form {
		if _, err := tx.NamedExecContext(ctx, insertFormFieldQuery, newFormFieldRow(announcementID, field)); err != nil {
			return fmt.Errorf("insert banner form field: %w", err)
		}
	}

	return insertPatternLinks(ctx, tx, announcementID, patterns)
}

func insertTexts(ctx context.Context, tx *sqlx.Tx, announcementID string, texts []dto.TextInput) error {
	for _, text := range texts {
		row := newTextRow(announcementID, text)
		if _, err := tx.NamedExecContext(ctx, insertTextQuery, row); err != nil {
			return fmt.Errorf("insert announcement text: %w", err)
		}
		for _, cta := range text.CallToActions {
			if _, err := tx.NamedExecContext(ctx, insertCTAQuery, newCTARow(row.ID, cta)); err != nil {
				return fmt.Errorf("insert call to action: %w", err)
			}
		}
	}
	return nil
}

// insertPatternLinks inserts a fresh pattern row per link; identical pattern
// strings across announcements are not deduplicated.
func insertPatternLinks(ctx context.Context, tx *sqlx.Tx, announcementID string, patterns []string) error {
	for _, pattern := range patterns {
		patternID := uuid.NewString()
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO page_patterns (id, pattern) VALUES ($1, $2)`, patternID, pattern); err != nil {
			return fmt.Errorf("insert page pattern: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO announcement_page_patterns (announcement_id, page_pattern_id) VALUES ($1, $2)`,
			announcementID, patternID); err != nil {
			return fmt.Errorf("insert page pattern link: %w", err)
		}
	}
	return nil
}

func patchHeader(ctx context.Context, tx *sqlx.Tx, id string, upd dto.AnnouncementUpdate) error {
	setParts := []string{"updated_at = :updated_at"}
	args := map[string]interface{}{
		"id":         id,
		"updated_at": time.Now().UTC(),
	}

	if upd.Type != nil {
		setParts = append(setParts, "type = :type")
		args["type"] = *upd.Type
	}
	if upd.Title != nil {
		setParts = append(setParts, "title = :title")
		args["title"] = *upd.Title
	}
	if upd.Size != nil {
		setParts = append(setParts, "size = :size")
		args["size"] = *upd.Size
	}
	if upd.HeightPx != nil {
		setParts = append(setParts, "height_px = :height_px")
		args["height_px"] = *upd.HeightPx
	}
	if upd.WidthPercent != nil {
		setParts = append(setParts, "width_percent = :width_percent")
		args["width_percent"] = *upd.WidthPercent
	}
	if upd.StartDate != nil {
		setParts = append(setParts, "start_date = :start_date")
		args["start_date"] = *upd.StartDate
	}
	if upd.EndDate != nil {
		setParts = append(setParts, "end_date = :end_date")
		args["end_date"] = *upd.EndDate
	}
	if upd.CloseButtonPosition != nil {
		setParts = append(setParts, "close_button_position = :close_button_position")
		args["close_button_position"] = *upd.CloseButtonPosition
	}
	if upd.IsActive != nil {
		setParts = append(setParts, "is_active = :is_active")
		args["is_active"] = *upd.IsActive
	}

	query := fmt.Sprintf("UPDATE announcements SET %s WHERE id = :id", strings.Join(setParts, ", "))
	if _, err := tx.NamedExecContext(ctx, query, args); err != nil {
		return fmt.Errorf("patch announcement: %w", err)
	}
	return nil
}
