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

type TemplateRepositoryInterface interface {
	List(category string) ([]*model.Template, error)
	GetByID(id string) (*model.Template, error)
	Create(t *model.Template) error
	CreateBatch(templates []*model.Template) error
	Update(id string, patch model.TemplatePatch) (*model.Template, error)
	Delete(id string) (bool, error)
	Count() (int, error)
}

type TemplateRepository struct {
	DB *sql.DB
}

const templateColumns = `id, name, category, subject, content, tags, created_at, updated_at`

// ====================== Row mapping ======================

type templateRow struct {
	ID        string
	Name      string
	Category  string
	Subject   sql.NullString
	Content   string
	Tags      pq.StringArray
	CreatedAt time.Time
	UpdatedAt time.Time
}

func rowToTemplate(row *templateRow) *model.Template {
	t := &model.Template{
		ID:        row.ID,
		Name:      row.Name,
		Category:  model.TemplateCategory(row.Category),
		Content:   row.Content,
		Tags:      []string(row.Tags),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if t.Tags == nil {
		t.Tags = []string{}
	}
	if row.Subject.Valid {
		s := row.Subject.String
		t.Subject = &s
	}
	return t
}

func templateToRow(t *model.Template) *templateRow {
	row := &templateRow{
		ID:        t.ID,
		Name:      t.Name,
		Category:  string(t.Category),
		Content:   t.Content,
		Tags:      pq.StringArray(t.Tags),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
	if row.Tags == nil {
		row.Tags = pq.StringArray{}
	}
	// subject || null: an empty subject is stored as NULL
	if t.Subject != nil && *t.Subject != "" {
		row.Subject = sql.NullString{String: *t.Subject, Valid: true}
	}
	return row
}

func scanTemplate(s rowScanner) (*model.Template, error) {
	var row templateRow
	err := s.Scan(
		&row.ID, &row.Name, &row.Category, &row.Subject,
		&row.Content, &row.Tags, &row.CreatedAt, &row.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return rowToTemplate(&row), nil
}

// ====================== Template CRUD ======================

func (r *TemplateRepository) Create(t *model.Template) error {
	now := time.Now().UTC()
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	t.CreatedAt = now
	t.UpdatedAt = now

	row := templateToRow(t)
	query := fmt.Sprintf(`
        INSERT INTO templates (%s)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `, templateColumns)
	_, err := r.DB.Exec(query, row.ID, row.Name, row.Category, row.Subject, row.Content, row.Tags, row.CreatedAt, row.UpdatedAt)
	return err
}

func (r *TemplateRepository) CreateBatch(templates []*model.Template) error {
	if len(templates) == 0 {
		return nil
	}

	const cols = 8
	values := make([]string, 0, len(templates))
	args := make([]interface{}, 0, len(templates)*cols)

	for i, t := range templates {
		if t.ID == "" {
			t.ID = uuid.New().String()
		}
		if t.CreatedAt.IsZero() {
			t.CreatedAt = time.Now().UTC()
		}
		if t.UpdatedAt.IsZero() {
			t.UpdatedAt = t.CreatedAt
		}

		placeholders := make([]string, cols)
		for j := range placeholders {
			placeholders[j] = fmt.Sprintf("$%d", i*cols+j+1)
		}
		values = append(values, "("+strings.Join(placeholders, ", ")+")")

		row := templateToRow(t)
		args = append(args, row.ID, row.Name, row.Category, row.Subject, row.Content, row.Tags, row.CreatedAt, row.UpdatedAt)
	}

	query := fmt.Sprintf(`INSERT INTO templates (%s) VALUES %s`, templateColumns, strings.Join(values, ", "))
	_, err := r.DB.Exec(query, args...)
	return err
}

func (r *TemplateRepository) GetByID(id string) (*model.Template, error) {
	query := fmt.Sprintf(`SELECT %s FROM templates WHERE id=$1`, templateColumns)
	t, err := scanTemplate(r.DB.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // not found
		}
		return nil, err
	}
	return t, nil
}

func (r *TemplateRepository) List(category string) ([]*model.Template, error) {
	query := fmt.Sprintf(`SELECT %s FROM templates WHERE 1=1`, templateColumns)
	args := []interface{}{}
	argPos := 1

	if category != "" {
		query += fmt.Sprintf(" AND category=$%d", argPos)
		args = append(args, category)
		argPos++
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	templates := []*model.Template{}
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

func (r *TemplateRepository) Update(id string, patch model.TemplatePatch) (*model.Template, error) {
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
	if patch.Category != nil {
		add("category", string(*patch.Category))
	}
	if patch.Subject != nil {
		if *patch.Subject == "" {
			add("subject", sql.NullString{})
		} else {
			add("subject", sql.NullString{String: *patch.Subject, Valid: true})
		}
	}
	if patch.Content != nil {
		add("content", *patch.Content)
	}
	if patch.Tags != nil {
		add("tags", pq.StringArray(*patch.Tags))
	}
	add("updated_at", time.Now().UTC())

	query := fmt.Sprintf(`UPDATE templates SET %s WHERE id=$%d RETURNING %s`,
		strings.Join(set, ", "), argPos, templateColumns)
	args = append(args, id)

	t, err := scanTemplate(r.DB.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return t, nil
}

func (r *TemplateRepository) Delete(id string) (bool, error) {
	res, err := r.DB.Exec(`DELETE FROM templates WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *TemplateRepository) Count() (int, error) {
	var count int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM templates`).Scan(&count)
	return count, err
}

var _ TemplateRepositoryInterface = (*TemplateRepository)(nil)
