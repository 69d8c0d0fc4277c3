package datamodels

import "testing"

func TestSchemaVersion(t *testing.T) {
	if !CurrentVersion.IsValid() {
		t.Error("CurrentVersion is not a published version")
	}
	if V1.String() != "1.0" || V1_1.String() != "1.1" {
		t.Errorf("version strings = %q, %q", V1, V1_1)
	}
	if SchemaVersion("2.0").IsValid() {
		t.Error("IsValid accepted an unpublished version")
	}
}
