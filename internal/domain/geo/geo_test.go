package geo

import (
	"math"
	"testing"
)

func TestHaversineKm_Symmetric(t *testing.T) {
	// Ho Chi Minh City and Hanoi.
	d1 := HaversineKm(10.7769, 106.7009, 21.0278, 105.8342)
	d2 := HaversineKm(21.0278, 105.8342, 10.7769, 106.7009)
	if d1 != d2 {
		t.Fatalf("distance not symmetric: %f vs %f", d1, d2)
	}
	if d1 < 1100 || d1 > 1200 {
		t.Fatalf("HCMC-Hanoi distance out of range: %f", d1)
	}
}

func TestHaversineKm_IdenticalPoints(t *testing.T) {
	if d := HaversineKm(10.7769, 106.7009, 10.7769, 106.7009); d != 0 {
		t.Fatalf("expected 0 for identical points, got %f", d)
	}
}

func TestHaversineKm_RoundedToTwoDecimals(t *testing.T) {
	d := HaversineKm(10.7769, 106.7009, 10.78, 106.71)
	scaled := d * 100
	if math.Abs(scaled-math.Round(scaled)) > 1e-9 {
		t.Fatalf("distance %f not rounded to two decimals", d)
	}
}

func TestHaversineKm_ShortDistance(t *testing.T) {
	// Two points ~1.11km apart along a meridian (0.01 deg latitude).
	d := HaversineKm(10, 106, 10.01, 106)
	if d < 1.0 || d > 1.2 {
		t.Fatalf("short distance out of range: %f", d)
	}
}

func TestValidateCoordinates(t *testing.T) {
	if !ValidateCoordinates(10.7769, 106.7009) {
		t.Error("valid coordinates rejected")
	}
	if ValidateCoordinates(91, 0) {
		t.Error("latitude > 90 accepted")
	}
	if ValidateCoordinates(0, -181) {
		t.Error("longitude < -180 accepted")
	}
}
