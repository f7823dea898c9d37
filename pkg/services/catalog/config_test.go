package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test catalog: %v", err)
	}
	return path
}

func TestLoad_ValidYAML_PopulatesAllFields(t *testing.T) {
	content := `schedules:
- name: hourly
  interval: 1h
  retention: 2d
- name: daily
  interval: 1d
  retention: 30d
  cold_after: 5d
- name: monthly
  interval: 1mo
  retention: 180d
  cold_after: 1w
prices:
  EBS:
    warm: 0.05
    cold: 0.0125
  RDS:
    warm: 0.095`
	path := writeCatalog(t, content)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	hourly, ok := c.Schedule("hourly")
	if !ok {
		t.Fatal("expected hourly schedule to exist")
	}
	if hourly.Interval.Fixed != time.Hour {
		t.Errorf("expected hourly interval 1h, got %v", hourly.Interval.Fixed)
	}
	if hourly.ColdAfter != 0 {
		t.Errorf("expected hourly cold_after unset, got %v", hourly.ColdAfter)
	}

	daily, _ := c.Schedule("daily")
	if daily.Retention != 30*day {
		t.Errorf("expected daily retention 30d, got %v", daily.Retention)
	}
	if daily.ColdAfter != 5*day {
		t.Errorf("expected daily cold_after 5d, got %v", daily.ColdAfter)
	}

	monthly, _ := c.Schedule("monthly")
	if monthly.Interval.Months != 1 {
		t.Errorf("expected monthly calendar interval, got %+v", monthly.Interval)
	}
	if monthly.ColdAfter != 7*day {
		t.Errorf("expected monthly cold_after 1w, got %v", monthly.ColdAfter)
	}

	ebs, ok := c.Price("EBS")
	if !ok {
		t.Fatal("expected EBS price to exist")
	}
	if !ebs.SupportsCold() || ebs.ColdRate() != 0.0125 {
		t.Errorf("expected EBS cold price 0.0125, got %+v", ebs)
	}

	rds, _ := c.Price("RDS")
	if rds.SupportsCold() {
		t.Error("expected RDS to have no cold price")
	}
}

func TestLoad_InvalidYAML_ReturnsError(t *testing.T) {
	path := writeCatalog(t, "schedules: [bad: yaml: here")

	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid YAML, got nil")
	}
}

func TestLoad_UnknownField_ReturnsError(t *testing.T) {
	content := `schedules:
- name: daily
  interval: 1d
  retention: 30d
  keep_forever: true
prices:
  EBS:
    warm: 0.05`
	path := writeCatalog(t, content)

	if _, err := Load(path); err == nil {
		t.Error("expected error for unknown schedule field, got nil")
	}
}

func TestLoad_CalendarRetention_ReturnsError(t *testing.T) {
	content := `schedules:
- name: daily
  interval: 1d
  retention: 1mo
prices:
  EBS:
    warm: 0.05`
	path := writeCatalog(t, content)

	if _, err := Load(path); err == nil {
		t.Error("expected error for calendar retention, got nil")
	}
}

func TestLoad_MissingFile_ReturnsError(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file, got nil")
	}
}
