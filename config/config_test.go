package config

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	LoadConfig()

	if AppConfig.AppPort != "8080" {
		t.Errorf("AppPort = %q, want %q", AppConfig.AppPort, "8080")
	}
	if AppConfig.DatabaseName != "brightsmile" {
		t.Errorf("DatabaseName = %q, want %q", AppConfig.DatabaseName, "brightsmile")
	}
	if AppConfig.ClinicOpenHour != 9 || AppConfig.ClinicCloseHour != 17 || AppConfig.SlotMinutes != 30 {
		t.Errorf("clinic schedule = %d-%d/%dmin, want 9-17/30min",
			AppConfig.ClinicOpenHour, AppConfig.ClinicCloseHour, AppConfig.SlotMinutes)
	}
	if IsProduction() {
		t.Error("default env should not be production")
	}
}
