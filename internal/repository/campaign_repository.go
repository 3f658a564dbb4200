package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/leadpilot/leadpilot-backend/internal/model"
)

type CampaignRepositoryInterface interface {
	List(status string) ([]*model.Campaign, error)
	GetByID(id string) (*model.Campaign, error)
	Create(c *model.Campaign) error
	CreateBatch(campaigns []*model.Campaign) error
	Update(id string, patch model.CampaignPatch) (*model.Campaign, error)
	UpdateStatus(id string, status model.CampaignStatus) (*model.Campaign, error)
	Delete(id string) (bool, error)
	Count() (int, error)
}

type CampaignRepository struct {
	DB *sql.DB
}

const campaignColumns = `id, name, description, status, target_industries, target_company_size_min, target_company_size_max, target_locations, messaging_subject, messaging_template, schedule_start_date, schedule_end_date, schedule_frequency, metrics_sent, metrics_opened, metrics_responded, metrics_converted, created_at, updated_at`

// ====================== Row mapping ======================

// campaignRow mirrors the campaigns table: flat snake_case columns, nullable
// dates, native text[] list columns.
type campaignRow struct {
	ID                   string
	Name                 string
	Description          string
	Status               string
	TargetIndustries     pq.StringArray
	TargetCompanySizeMin int
	TargetCompanySizeMax int
	TargetLocations      pq.StringArray
	MessagingSubject     string
	MessagingTemplate    string
	ScheduleStartDate    sql.NullTime
	ScheduleEndDate      sql.NullTime
	ScheduleFrequency    string
	MetricsSent          int
	MetricsOpened        int
	MetricsResponded     int
	MetricsConverted     int
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// rowToCampaign rebuilds the nested record shape. Absent list columns become
// empty slices, absent dates become nil pointers; required columns are passed
// through as stored.
func rowToCampaign(row *campaignRow) *model.Campaign {
	c := &model.Campaign{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Status:      model.CampaignStatus(row.Status),
		Target: model.Target{
			Industries: []string(row.TargetIndustries),
			CompanySize: model.CompanySize{
				Min: row.TargetCompanySizeMin,
				Max: row.TargetCompanySizeMax,
			},
			Locations: []string(row.TargetLocations),
		},
		Messaging: model.Messaging{
			Subject:  row.MessagingSubject,
			Template: row.MessagingTemplate,
		},
		Schedule: model.Schedule{
			Frequency: row.ScheduleFrequency,
		},
		Metrics: model.Metrics{
			Sent:      row.MetricsSent,
			Opened:    row.MetricsOpened,
			Responded: row.MetricsResponded,
			Converted: row.MetricsConverted,
		},
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if c.Target.Industries == nil {
		c.Target.Industries = []string{}
	}
	if c.Target.Locations == nil {
		c.Target.Locations = []string{}
	}
	if row.ScheduleStartDate.Valid {
		t := row.ScheduleStartDate.Time
		c.Schedule.StartDate = &t
	}
	if row.ScheduleEndDate.Valid {
		t := row.ScheduleEndDate.Time
		c.Schedule.EndDate = &t
	}
	return c
}

// campaignToRow flattens the nested record into column shape.
func campaignToRow(c *model.Campaign) *campaignRow {
	row := &campaignRow{
		ID:                   c.ID,
		Name:                 c.Name,
		Description:          c.Description,
		Status:               string(c.Status),
		TargetIndustries:     pq.StringArray(c.Target.Industries),
		TargetCompanySizeMin: c.Target.CompanySize.Min,
		TargetCompanySizeMax: c.Target.CompanySize.Max,
		TargetLocations:      pq.StringArray(c.Target.Locations),
		MessagingSubject:     c.Messaging.Subject,
		MessagingTemplate:    c.Messaging.Template,
		ScheduleFrequency:    c.Schedule.Frequency,
		MetricsSent:          c.Metrics.Sent,
		MetricsOpened:        c.Metrics.Opened,
		MetricsResponded:     c.Metrics.Responded,
		MetricsConverted:     c.Metrics.Converted,
		CreatedAt:            c.CreatedAt,
		UpdatedAt:            c.UpdatedAt,
	}
	if row.TargetIndustries == nil {
		row.TargetIndustries = pq.StringArray{}
	}
	if row.TargetLocations == nil {
		row.TargetLocations = pq.StringArray{}
	}
	if c.Schedule.StartDate != nil {
		row.ScheduleStartDate = sql.NullTime{Time: *c.Schedule.StartDate, Valid: true}
	}
	if c.Schedule.EndDate != nil {
		row.ScheduleEndDate = sql.NullTime{Time: *c.Schedule.EndDate, Valid: true}
	}
	return row
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCampaign(s rowScanner) (*model.Campaign, error) {
	var row campaignRow
	err := s.Scan(
		&row.ID, &row.Name, &row.Description, &row.Status,
		&row.TargetIndustries, &row.TargetCompanySizeMin, &row.TargetCompanySizeMax, &row.TargetLocations,
		&row.MessagingSubject, &row.MessagingTemplate,
		&row.ScheduleStartDate, &row.ScheduleEndDate, &row.ScheduleFrequency,
		&row.MetricsSent, &row.MetricsOpened, &row.MetricsResponded, &row.MetricsConverted,
		&row.CreatedAt, &row.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return rowToCampaign(&row), nil
}

func campaignRowArgs(row *campaignRow) []interface{} {
	return []interface{}{
		row.ID, row.Name, row.Description, row.Status,
		row.TargetIndustries, row.TargetCompanySizeMin, row.TargetCompanySizeMax, row.TargetLocations,
		row.MessagingSubject, row.MessagingTemplate,
		row.ScheduleStartDate, row.ScheduleEndDate, row.ScheduleFrequency,
		row.MetricsSent, row.MetricsOpened, row.MetricsResponded, row.MetricsConverted,
		row.CreatedAt, row.UpdatedAt,
	}
}

// ====================== Campaign CRUD ======================

func (r *CampaignRepository) Create(c *model.Campaign) error {
	now := time.Now().UTC()
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.Status == "" {
		c.Status = model.StatusDraft
	}
	c.CreatedAt = now
	c.UpdatedAt = now

	query := fmt.Sprintf(`
        INSERT INTO campaigns (%s)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
    `, campaignColumns)
	_, err := r.DB.Exec(query, campaignRowArgs(campaignToRow(c))...)
	return err
}

// CreateBatch inserts the given campaigns in a single statement, keeping
// whatever ids, statuses and timestamps the caller set (the seeder relies on
// that). Missing ids and timestamps are still filled in.
func (r *CampaignRepository) CreateBatch(campaigns []*model.Campaign) error {
	if len(campaigns) == 0 {
		return nil
	}

	const cols = 19
	values := make([]string, 0, len(campaigns))
	args := make([]interface{}, 0, len(campaigns)*cols)

	for i, c := range campaigns {
		if c.ID == "" {
			c.ID = uuid.New().String()
		}
		if c.CreatedAt.IsZero() {
			c.CreatedAt = time.Now().UTC()
		}
		if c.UpdatedAt.IsZero() {
			c.UpdatedAt = c.CreatedAt
		}

		placeholders := make([]string, cols)
		for j := range placeholders {
			placeholders[j] = fmt.Sprintf("$%d", i*cols+j+1)
		}
		values = append(values, "("+strings.Join(placeholders, ", ")+")")
		args = append(args, campaignRowArgs(campaignToRow(c))...)
	}

	query := fmt.Sprintf(`INSERT INTO campaigns (%s) VALUES %s`, campaignColumns, strings.Join(values, ", "))
	_, err := r.DB.Exec(query, args...)
	return err
}

func (r *CampaignRepository) GetByID(id string) (*model.Campaign, error) {
	query := fmt.Sprintf(`SELECT %s FROM campaigns WHERE id=$1`, campaignColumns)
	c, err := scanCampaign(r.DB.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // not found
		}
		return nil, err
	}
	return c, nil
}

func (r *CampaignRepository) List(status string) ([]*model.Campaign, error) {
	query := fmt.Sprintf(`SELECT %s FROM campaigns WHERE 1=1`, campaignColumns)
	args := []interface{}{}
	argPos := 1

	if status != "" {
		query += fmt.Sprintf(" AND status=$%d", argPos)
		args = append(args, status)
		argPos++
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	campaigns := []*model.Campaign{}
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, rows.Err()
}

// Update applies a sparse patch: only the set fields reach the SET clause,
// everything else keeps its stored value. Returns (nil, nil) when id does not
// exist.
func (r *CampaignRepository) Update(id string, patch model.CampaignPatch) (*model.Campaign, error) {
	set := []string{}
	args := []interface{}{}
	argPos := 1

	add := func(column string, value interface{}) {
		set = append(set, fmt.Sprintf("%s=$%d", column, argPos))
		args = append(args, value)
		argPos++
	}

	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Industries != nil {
		add("target_industries", pq.StringArray(*patch.Industries))
	}
	if patch.MinCompanySize != nil {
		add("target_company_size_min", *patch.MinCompanySize)
	}
	if patch.MaxCompanySize != nil {
		add("target_company_size_max", *patch.MaxCompanySize)
	}
	if patch.Locations != nil {
		add("target_locations", pq.StringArray(*patch.Locations))
	}
	if patch.Subject != nil {
		add("messaging_subject", *patch.Subject)
	}
	if patch.Template != nil {
		add("messaging_template", *patch.Template)
	}
	if patch.StartDate != nil {
		add("schedule_start_date", *patch.StartDate)
	}
	if patch.EndDate != nil {
		add("schedule_end_date", *patch.EndDate)
	}
	if patch.Frequency != nil {
		add("schedule_frequency", *patch.Frequency)
	}
	add("updated_at", time.Now().UTC())

	query := fmt.Sprintf(`UPDATE campaigns SET %s WHERE id=$%d RETURNING %s`,
		strings.Join(set, ", "), argPos, campaignColumns)
	args = append(args, id)

	c, err := scanCampaign(r.DB.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

func (r *CampaignRepository) UpdateStatus(id string, status model.CampaignStatus) (*model.Campaign, error) {
	query := fmt.Sprintf(`UPDATE campaigns SET status=$1, updated_at=$2 WHERE id=$3 RETURNING %s`, campaignColumns)
	c, err := scanCampaign(r.DB.QueryRow(query, string(status), time.Now().UTC(), id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

// Delete reports whether a row was actually removed; deleting an unknown id
// is not an error.
func (r *CampaignRepository) Delete(id string) (bool, error) {
	res, err := r.DB.Exec(`DELETE FROM campaigns WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *CampaignRepository) Count() (int, error) {
	var count int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM campaigns`).Scan(&count)
	return count, err
}

var _ CampaignRepositoryInterface = (*CampaignRepository)(nil)
