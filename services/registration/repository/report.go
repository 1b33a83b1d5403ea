package repository

import (
	"context"
	"fmt"
	"hospital/domain"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type reportRepository struct {
	db *pgxpool.Pool
}

func NewReportRepository(database *pgxpool.Pool) domain.ReportRepo {
	return &reportRepository{
		db: database,
	}
}

// SearchVisits applies the same CNIC substring rule as the patient search but
// projects each match over its most recent visit, one flat row per patient.
func (rr *reportRepository) SearchVisits(ctx context.Context, term string) (*[]domain.VisitSearchRow, error) {
	query := `
		SELECT p.patient_id, p.name, p.cnic, p.token_number, lv.created_at, u.name
		FROM patients p
		LEFT JOIN LATERAL (
			SELECT created_at FROM visits
			WHERE patient_id = p.patient_id
			ORDER BY created_at DESC LIMIT 1
		) lv ON true
		LEFT JOIN users u ON u.user_id = p.doctor_id
		WHERE p.deleted_at IS NULL
		  AND ($1 = '' OR p.cnic LIKE $2 OR EXISTS (
			SELECT 1 FROM relations r
			WHERE r.patient_id = p.patient_id AND r.cnic LIKE $2))
		ORDER BY p.patient_id
	`

	rows, err := rr.db.Query(ctx, query, term, "%"+term+"%")
	if err != nil {
		return nil, fmt.Errorf("could not search visits: %v", err)
	}
	defer rows.Close()

	var results []domain.VisitSearchRow
	for rows.Next() {
		var row domain.VisitSearchRow
		var lastVisit *time.Time
		var doctorName *string

		if err := rows.Scan(&row.PatientID, &row.PatientName, &row.CNIC, &row.TokenNumber, &lastVisit, &doctorName); err != nil {
			return nil, fmt.Errorf("could not scan visit search row: %v", err)
		}
		row.LastVisit = lastVisit
		row.DoctorName = doctorName
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not read visit search rows: %v", err)
	}

	return &results, nil
}

func (rr *reportRepository) ListDoctors(ctx context.Context) (*[]domain.SafeDoctorData, error) {
	query := `
		SELECT user_id, name FROM users
		WHERE role = 'doctor' AND deleted_at IS NULL
		ORDER BY name
	`

	rows, err := rr.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("could not list doctors: %v", err)
	}
	defer rows.Close()

	var doctors []domain.SafeDoctorData
	for rows.Next() {
		var doctor domain.SafeDoctorData
		if err := rows.Scan(&doctor.UserID, &doctor.Name); err != nil {
			return nil, fmt.Errorf("could not scan doctor row: %v", err)
		}
		doctors = append(doctors, doctor)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not read doctor rows: %v", err)
	}

	return &doctors, nil
}

func (rr *reportRepository) DashboardSummary(ctx context.Context) (*domain.DashboardSummary, error) {
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	query := `
		SELECT
			(SELECT COUNT(*) FROM patients WHERE created_at >= $1 AND deleted_at IS NULL),
			(SELECT COUNT(*) FROM visits WHERE created_at >= $1),
			(SELECT COALESCE(MAX(last_token), 0) FROM global_settings WHERE id = $2)
	`

	var summary domain.DashboardSummary
	err := rr.db.QueryRow(ctx, query, dayStart, domain.GlobalSettingID).
		Scan(&summary.RegistrationsToday, &summary.VisitsToday, &summary.CurrentToken)
	if err != nil {
		return nil, fmt.Errorf("could not build dashboard summary: %v", err)
	}

	return &summary, nil
}
