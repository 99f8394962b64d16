package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/DarkTheory001/DevNest/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type WhatsappBotRepository struct {
	pool *pgxpool.Pool
}

func NewWhatsappBotRepository(pool *pgxpool.Pool) *WhatsappBotRepository {
	return &WhatsappBotRepository{pool: pool}
}

const botColumns = `id, project_id, phone_number, access_token, webhook_url, is_active, created_at, updated_at`

func scanBot(row pgx.Row) (*model.WhatsappBot, error) {
	b := &model.WhatsappBot{}
	err := row.Scan(&b.ID, &b.ProjectID, &b.PhoneNumber, &b.AccessToken, &b.WebhookURL, &b.IsActive, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *WhatsappBotRepository) Create(ctx context.Context, req *model.CreateWhatsappBotRequest) (*model.WhatsappBot, error) {
	return scanBot(r.pool.QueryRow(ctx, `
		INSERT INTO whatsapp_bots (project_id, phone_number, access_token, webhook_url)
		VALUES ($1, $2, $3, $4)
		RETURNING `+botColumns+`
	`, req.ProjectID, req.PhoneNumber, req.AccessToken, req.WebhookURL))
}

func (r *WhatsappBotRepository) GetByID(ctx context.Context, id string) (*model.WhatsappBot, error) {
	return scanBot(r.pool.QueryRow(ctx, `SELECT `+botColumns+` FROM whatsapp_bots WHERE id = $1`, id))
}

func (r *WhatsappBotRepository) GetByProject(ctx context.Context, projectID string) (*model.WhatsappBot, error) {
	return scanBot(r.pool.QueryRow(ctx, `SELECT `+botColumns+` FROM whatsapp_bots WHERE project_id = $1`, projectID))
}

func (r *WhatsappBotRepository) Update(ctx context.Context, id string, req *model.UpdateWhatsappBotRequest) (*model.WhatsappBot, error) {
	sets := []string{"updated_at = NOW()"}
	var args []interface{}
	argIdx := 1

	add := func(col string, val interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, argIdx))
		args = append(args, val)
		argIdx++
	}

	if req.PhoneNumber != nil {
		add("phone_number", *req.PhoneNumber)
	}
	if req.AccessToken != nil {
		add("access_token", *req.AccessToken)
	}
	if req.WebhookURL != nil {
		add("webhook_url", *req.WebhookURL)
	}
	if req.IsActive != nil {
		add("is_active", *req.IsActive)
	}

	query := fmt.Sprintf(`
		UPDATE whatsapp_bots SET %s WHERE id = $%d RETURNING %s
	`, strings.Join(sets, ", "), argIdx, botColumns)
	args = append(args, id)

	return scanBot(r.pool.QueryRow(ctx, query, args...))
}
