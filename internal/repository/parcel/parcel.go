package parcel

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/repository"
	"marketplace/internal/service/parcel"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const defaultListLimit = 200

var packageColumns = []string{
	"id", "tracking_number", "sender_id", "courier_id",
	"sender_name", "sender_phone", "recipient_name", "recipient_phone",
	"description", "package_type", "package_count", "weight_kg",
	"length_cm", "width_cm", "height_cm", "package_value", "high_value",
	"origin_city", "destination_city", "origin_commune", "destination_commune",
	"origin_address", "destination_address", "service_level", "distance_km",
	"price", "payment_method", "estimated_delivery_time",
	"status", "signer_name", "signed_at", "created_at", "updated_at",
}

const insertHistoryQuery = `INSERT INTO package_status_history (package_id, seq, status, note, created_at)
	SELECT $1, COALESCE(MAX(seq), 0) + 1, $2, $3, $4
	FROM package_status_history
	WHERE package_id = $1`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create stores the package and its initial history in one round trip.
func (r *Repository) Create(ctx context.Context, pkg entities.Package) (*entities.Package, error) {
	m := FromDomain(&pkg)

	query, args, err := qb.Insert("packages").
		Columns(packageColumns...).
		Values(
			m.ID, m.TrackingNumber, m.SenderID, m.CourierID,
			m.SenderName, m.SenderPhone, m.RecipientName, m.RecipientPhone,
			m.Description, m.PackageType, m.PackageCount, m.WeightKg,
			m.LengthCm, m.WidthCm, m.HeightCm, m.PackageValue, m.HighValue,
			m.OriginCity, m.DestinationCity, m.OriginCommune, m.DestinationCommune,
			m.OriginAddress, m.DestinationAddress, m.ServiceLevel, m.DistanceKm,
			m.Price, m.PaymentMethod, m.EstimatedDeliveryTime,
			m.Status, m.SignerName, m.SignedAt, m.CreatedAt, m.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository create error: %w", err)
	}

	batch := &pgx.Batch{}
	batch.Queue(query, args...)
	for _, entry := range pkg.StatusHistory {
		batch.Queue(insertHistoryQuery, pkg.ID, entry.Status.String(), entry.Notes, entry.Timestamp)
	}

	results := r.querier.SendBatch(ctx, batch)
	for range batch.Len() {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
				return nil, parcel.ErrTrackingNumberTaken
			}
			return nil, fmt.Errorf("unexpected parcel repository create error: %w", err)
		}
	}
	if err := results.Close(); err != nil {
		return nil, fmt.Errorf("unexpected parcel repository create error: %w", err)
	}

	return &pkg, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Package, error) {
	return r.getOne(ctx, sq.Eq{"id": id})
}

func (r *Repository) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*entities.Package, error) {
	return r.getOne(ctx, sq.Eq{"tracking_number": trackingNumber})
}

func (r *Repository) getOne(ctx context.Context, where sq.Eq) (*entities.Package, error) {
	query, args, err := qb.Select(packageColumns...).
		From("packages").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository get error: %w", err)
	}

	model, err := scanPackage(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, parcel.ErrPackageNotFound
		}
		return nil, fmt.Errorf("unexpected parcel repository get error: %w", err)
	}

	histories, err := r.histories(ctx, []string{model.ID})
	if err != nil {
		return nil, err
	}

	return ToDomain(model, histories[model.ID]), nil
}

// List returns packages newest first.
func (r *Repository) List(ctx context.Context, filter entities.PackageFilter) ([]entities.Package, error) {
	builder := qb.Select(packageColumns...).From("packages")

	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}
	if filter.City != nil {
		builder = builder.Where(sq.Eq{"origin_city": *filter.City})
	}
	if filter.SenderID != nil {
		builder = builder.Where(sq.Eq{"sender_id": *filter.SenderID})
	}
	if filter.CourierID != nil {
		builder = builder.Where(sq.Eq{"courier_id": *filter.CourierID})
	}

	limit := filter.Limit
	if limit == 0 {
		limit = defaultListLimit
	}

	query, args, err := builder.
		OrderBy("created_at DESC", "id").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository list error: %w", err)
	}
	defer rows.Close()

	models := make([]*PackageDB, 0, 16)
	ids := make([]string, 0, 16)
	for rows.Next() {
		model, err := scanPackage(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected parcel repository list error: %w", err)
		}
		models = append(models, model)
		ids = append(ids, model.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected parcel repository list error: %w", err)
	}

	histories, err := r.histories(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]entities.Package, len(models))
	for i, model := range models {
		result[i] = *ToDomain(model, histories[model.ID])
	}
	return result, nil
}

// ApplyTransition is a compare-and-swap on the stored status: of two writers
// starting from the same status only the first one to commit changes the row.
func (r *Repository) ApplyTransition(ctx context.Context, t entities.PackageTransition) error {
	builder := qb.Update("packages").
		Set("status", t.Entry.Status.String()).
		Set("updated_at", t.Entry.Timestamp).
		Where(sq.Eq{"id": t.PackageID, "status": t.From.String()})

	if t.CourierID != nil && t.From == entities.PackagePending {
		builder = builder.
			Set("courier_id", *t.CourierID).
			Where(sq.Eq{"courier_id": nil})
	}
	if t.Signature != nil {
		builder = builder.
			Set("signer_name", t.Signature.SignerName).
			Set("signed_at", t.Signature.SignedAt)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("unexpected parcel repository transition error: %w", err)
	}

	tag, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected parcel repository transition error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return r.missedTransition(ctx, t)
	}

	_, err = r.querier.Exec(ctx, insertHistoryQuery,
		t.PackageID, t.Entry.Status.String(), t.Entry.Notes, t.Entry.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("unexpected parcel repository history error: %w", err)
	}
	return nil
}

// missedTransition tells a vanished package apart from a lost race.
func (r *Repository) missedTransition(ctx context.Context, t entities.PackageTransition) error {
	var status string
	err := r.querier.QueryRow(ctx, `SELECT status FROM packages WHERE id = $1`, t.PackageID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return parcel.ErrPackageNotFound
		}
		return fmt.Errorf("unexpected parcel repository transition error: %w", err)
	}
	return fmt.Errorf("%w: expected %s, found %s", parcel.ErrStatusConflict, t.From, status)
}

func (r *Repository) histories(ctx context.Context, ids []string) (map[string][]StatusHistoryDB, error) {
	result := make(map[string][]StatusHistoryDB, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	rows, err := r.querier.Query(ctx, `SELECT package_id, seq, status, note, created_at
		FROM package_status_history
		WHERE package_id = ANY($1)
		ORDER BY package_id, seq`, ids)
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository history error: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var h StatusHistoryDB
		if err := rows.Scan(&h.PackageID, &h.Seq, &h.Status, &h.Note, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("unexpected parcel repository history error: %w", err)
		}
		result[h.PackageID] = append(result[h.PackageID], h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected parcel repository history error: %w", err)
	}
	return result, nil
}

func scanPackage(row pgx.Row) (*PackageDB, error) {
	var m PackageDB
	err := row.Scan(
		&m.ID, &m.TrackingNumber, &m.SenderID, &m.CourierID,
		&m.SenderName, &m.SenderPhone, &m.RecipientName, &m.RecipientPhone,
		&m.Description, &m.PackageType, &m.PackageCount, &m.WeightKg,
		&m.LengthCm, &m.WidthCm, &m.HeightCm, &m.PackageValue, &m.HighValue,
		&m.OriginCity, &m.DestinationCity, &m.OriginCommune, &m.DestinationCommune,
		&m.OriginAddress, &m.DestinationAddress, &m.ServiceLevel, &m.DistanceKm,
		&m.Price, &m.PaymentMethod, &m.EstimatedDeliveryTime,
		&m.Status, &m.SignerName, &m.SignedAt, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
