// Package watersvc - Test SeederService trên store giả trong bộ nhớ.
package watersvc

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"cwc_water/internal/api/water/models"
	"cwc_water/internal/metrics"
)

// fakeStore giữ document trong bộ nhớ, đủ cho mẫu delete-then-insert của seeder.
type fakeStore[T any] struct {
	docs        []T
	insertErr   error
	deleteCalls []interface{}
}

func (f *fakeStore[T]) InsertMany(_ context.Context, data []T) (int64, error) {
	if f.insertErr != nil {
		return 0, f.insertErr
	}
	f.docs = append(f.docs, data...)
	return int64(len(data)), nil
}

func (f *fakeStore[T]) Find(_ context.Context, _ interface{}, _ *options.FindOptions) ([]T, error) {
	out := make([]T, len(f.docs))
	copy(out, f.docs)
	return out, nil
}

func (f *fakeStore[T]) DeleteMany(_ context.Context, filter interface{}) (int64, error) {
	f.deleteCalls = append(f.deleteCalls, filter)
	removed := int64(len(f.docs))
	f.docs = nil
	return removed, nil
}

func (f *fakeStore[T]) CountDocuments(_ context.Context, _ interface{}) (int64, error) {
	return int64(len(f.docs)), nil
}

func newSeederOnFakes(tag string, days int) (*SeederService, func() [5]int) {
	reservoirs := &fakeStore[models.ReservoirLevel]{}
	discharges := &fakeStore[models.BasinDischarge]{}
	rainfall := &fakeStore[models.RainfallSummary]{}
	alerts := &fakeStore[models.FloodAlert]{}
	projects := &fakeStore[models.WaterProject]{}

	svc := &SeederService{
		reservoirs:    reservoirs,
		discharges:    discharges,
		rainfall:      rainfall,
		alerts:        alerts,
		projects:      projects,
		sourceTag:     tag,
		daysOfHistory: days,
		metrics:       metrics.NewMetricsForTesting(),
	}
	counts := func() [5]int {
		return [5]int{
			len(reservoirs.docs),
			len(discharges.docs),
			len(rainfall.docs),
			len(alerts.docs),
			len(projects.docs),
		}
	}
	return svc, counts
}

func TestSeedAll_DeleteThenInsertIsIdempotent(t *testing.T) {
	svc, counts := newSeederOnFakes("seed-test", 3)

	if err := svc.SeedAll(context.Background()); err != nil {
		t.Fatalf("SeedAll lần 1 lỗi: %v", err)
	}
	first := counts()

	want := [5]int{
		3 * len(ReservoirTemplates),
		3 * len(BasinStations),
		3 * len(RainfallStations),
		len(FloodAlertSeeds),
		len(WaterProjectSeeds),
	}
	if first != want {
		t.Fatalf("số document sau lần 1 = %v, muốn %v", first, want)
	}

	// Chạy lại không được nhân đôi dataset: tag cũ bị xóa trước khi insert
	if err := svc.SeedAll(context.Background()); err != nil {
		t.Fatalf("SeedAll lần 2 lỗi: %v", err)
	}
	if second := counts(); second != want {
		t.Errorf("số document sau lần 2 = %v, muốn %v (không trùng lặp)", second, want)
	}
}

func TestSeedAll_DeleteFilterCarriesSourceTag(t *testing.T) {
	svc, _ := newSeederOnFakes("seed-test", 2)
	store := svc.reservoirs.(*fakeStore[models.ReservoirLevel])

	if err := svc.SeedAll(context.Background()); err != nil {
		t.Fatalf("SeedAll lỗi: %v", err)
	}
	if len(store.deleteCalls) != 1 {
		t.Fatalf("số lần DeleteMany = %d, muốn 1", len(store.deleteCalls))
	}
	filter, ok := store.deleteCalls[0].(bson.M)
	if !ok {
		t.Fatalf("filter xóa có kiểu %T, muốn bson.M", store.deleteCalls[0])
	}
	if filter["sourceTag"] != "seed-test" {
		t.Errorf("filter xóa theo sourceTag = %v, muốn seed-test", filter["sourceTag"])
	}
}

func TestSeedAll_AbortsOnFirstFailure(t *testing.T) {
	svc, counts := newSeederOnFakes("seed-test", 2)
	svc.discharges.(*fakeStore[models.BasinDischarge]).insertErr = errors.New("write concern timeout")

	err := svc.SeedAll(context.Background())
	if err == nil {
		t.Fatal("SeedAll phải trả lỗi khi insert basin_discharges thất bại")
	}

	got := counts()
	if got[0] == 0 {
		t.Error("reservoir_levels phải đã được seed trước khi lỗi xảy ra")
	}
	// Các collection sau điểm lỗi không được đụng tới
	for i, name := range []string{"basin_discharges", "rainfall_daily", "flood_alerts", "water_projects"} {
		if got[i+1] != 0 {
			t.Errorf("%s có %d document, muốn 0 sau khi dừng", name, got[i+1])
		}
	}
}
