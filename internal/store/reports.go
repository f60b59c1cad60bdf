package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/astra-cloud/astra/internal/core/model"
	"github.com/astra-cloud/astra/internal/driver"
)

// SaveReport persists a carbon report with its integrity hash.
func (s *Store) SaveReport(ctx context.Context, report model.CarbonReport, hash string) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	_, err = s.driver.ExecuteQuery(ctx, driver.SaveReportQuery, map[string]interface{}{
		"id":         report.ReportID,
		"user_id":    report.UserID,
		"hash":       hash,
		"carbon_kg":  report.Metrics.CarbonKg,
		"created_at": report.CreatedAt.UTC().Format(time.RFC3339),
		"payload":    string(payload),
	})
	if err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}

// GetReport returns a stored report and its hash.
func (s *Store) GetReport(ctx context.Context, id string) (model.CarbonReport, string, error) {
	result, err := s.driver.ExecuteQuery(ctx, driver.GetReportQuery, map[string]interface{}{"id": id})
	if err != nil {
		return model.CarbonReport{}, "", err
	}
	if len(result.Records) == 0 {
		return model.CarbonReport{}, "", ErrNotFound
	}
	return decodeReport(result.Records[0])
}

// GetReportByHash resolves a report from its integrity hash, used to
// verify an externally held hash against stored reports.
func (s *Store) GetReportByHash(ctx context.Context, hash string) (model.CarbonReport, string, error) {
	result, err := s.driver.ExecuteQuery(ctx, driver.GetReportByHashQuery, map[string]interface{}{"hash": hash})
	if err != nil {
		return model.CarbonReport{}, "", err
	}
	if len(result.Records) == 0 {
		return model.CarbonReport{}, "", ErrNotFound
	}
	return decodeReport(result.Records[0])
}

// ListReports returns reports newest first.
func (s *Store) ListReports(ctx context.Context, limit, skip int) ([]model.CarbonReport, error) {
	if limit <= 0 {
		limit = 20
	}

	result, err := s.driver.ExecuteQuery(ctx, driver.ListReportsQuery, map[string]interface{}{
		"skip":  int64(skip),
		"limit": int64(limit),
	})
	if err != nil {
		return nil, err
	}

	reports := make([]model.CarbonReport, 0, len(result.Records))
	for _, record := range result.Records {
		report, _, err := decodeReport(record)
		if err != nil {
			log.Printf("Skipping undecodable report: %v", err)
			continue
		}
		reports = append(reports, report)
	}
	return reports, nil
}

func decodeReport(record interface{ Get(string) (interface{}, bool) }) (model.CarbonReport, string, error) {
	payload, _ := record.Get("payload")
	hash, _ := record.Get("hash")

	var report model.CarbonReport
	if err := json.Unmarshal([]byte(asString(payload)), &report); err != nil {
		return model.CarbonReport{}, "", fmt.Errorf("failed to decode report: %w", err)
	}
	return report, asString(hash), nil
}
