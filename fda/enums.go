package fda

import (
	"strings"

	dm "github.com/ashmatics/datamodels"
)

// ClearanceType is the FDA premarket pathway a device came to market
// through. Values follow 21 CFR Parts 807, 814, and 860.
type ClearanceType string

const (
	ClearancePMA    ClearanceType = "PMA"
	Clearance510    ClearanceType = "510(k)"
	ClearanceDeNovo ClearanceType = "De Novo"
	ClearanceHDE    ClearanceType = "HDE"
	ClearanceEUA    ClearanceType = "EUA"
)

// IsValid reports whether t is a recognized clearance type.
func (t ClearanceType) IsValid() bool {
	switch t {
	case ClearancePMA, Clearance510, ClearanceDeNovo, ClearanceHDE, ClearanceEUA:
		return true
	}
	return false
}

// ClearanceTypeFromNumber derives the pathway from a submission number's
// prefix: K and BK are 510(k), DEN is De Novo, P is PMA, H is HDE.
func ClearanceTypeFromNumber(number string) (ClearanceType, error) {
	upper := strings.ToUpper(strings.TrimSpace(number))
	switch {
	case strings.HasPrefix(upper, "DEN"):
		return ClearanceDeNovo, nil
	case strings.HasPrefix(upper, "K"), strings.HasPrefix(upper, "BK"):
		return Clearance510, nil
	case strings.HasPrefix(upper, "P"):
		return ClearancePMA, nil
	case strings.HasPrefix(upper, "H"):
		return ClearanceHDE, nil
	}
	return "", &dm.FormatError{
		Kind:   "clearance number prefix",
		Value:  number,
		Format: "K/BK (510(k)), DEN (De Novo), P (PMA), or H (HDE) prefix",
	}
}

// DeviceClass is the FDA risk-based device classification under
// 21 CFR Part 860.
type DeviceClass string

const (
	DeviceClass1 DeviceClass = "1"
	DeviceClass2 DeviceClass = "2"
	DeviceClass3 DeviceClass = "3"
)

// IsValid reports whether c is a recognized device class.
func (c DeviceClass) IsValid() bool {
	switch c {
	case DeviceClass1, DeviceClass2, DeviceClass3:
		return true
	}
	return false
}

// RiskLevel returns the human-readable risk level for the class.
func (c DeviceClass) RiskLevel() string {
	switch c {
	case DeviceClass1:
		return "Low Risk"
	case DeviceClass2:
		return "Moderate Risk"
	case DeviceClass3:
		return "High Risk"
	}
	return ""
}

// RegulatoryControls returns the typical controls applied to the class.
func (c DeviceClass) RegulatoryControls() []string {
	switch c {
	case DeviceClass1:
		return []string{"General Controls"}
	case DeviceClass2:
		return []string{"General Controls", "Special Controls"}
	case DeviceClass3:
		return []string{"General Controls", "Premarket Approval"}
	}
	return nil
}

// TypicalSubmission returns the usual premarket pathway for the class.
func (c DeviceClass) TypicalSubmission() string {
	switch c {
	case DeviceClass1:
		return "Exempt or 510(k)"
	case DeviceClass2:
		return "510(k)"
	case DeviceClass3:
		return "PMA"
	}
	return ""
}

// SubmissionType is the premarket submission pathway a product
// classification requires. Values follow the OpenFDA Device
// Classification API.
type SubmissionType string

const (
	Submission510    SubmissionType = "510(k)"
	SubmissionPMA    SubmissionType = "PMA"
	SubmissionDeNovo SubmissionType = "De Novo"
	SubmissionExempt SubmissionType = "Exempt"
	SubmissionHDE    SubmissionType = "HDE"
	SubmissionPDP    SubmissionType = "PDP"
)

// IsValid reports whether t is a recognized submission type.
func (t SubmissionType) IsValid() bool {
	switch t {
	case Submission510, SubmissionPMA, SubmissionDeNovo, SubmissionExempt,
		SubmissionHDE, SubmissionPDP:
		return true
	}
	return false
}

// ReviewPanel is the FDA review panel a device is assigned to, per
// 21 CFR Parts 862-892.
type ReviewPanel string

const (
	PanelAnesthesiology         ReviewPanel = "AN"
	PanelCardiovascular         ReviewPanel = "CV"
	PanelClinicalChemistry      ReviewPanel = "CH"
	PanelDental                 ReviewPanel = "DE"
	PanelEarNoseThroat          ReviewPanel = "EN"
	PanelGastroenterologyUro    ReviewPanel = "GU"
	PanelGeneralHospital        ReviewPanel = "HO"
	PanelHematology             ReviewPanel = "HE"
	PanelImmunology             ReviewPanel = "IM"
	PanelMicrobiology           ReviewPanel = "MI"
	PanelNeurology              ReviewPanel = "NE"
	PanelObstetricsGynecology   ReviewPanel = "OB"
	PanelOphthalmic             ReviewPanel = "OP"
	PanelOrthopedic             ReviewPanel = "OR"
	PanelPathology              ReviewPanel = "PA"
	PanelPhysicalMedicine       ReviewPanel = "PM"
	PanelRadiology              ReviewPanel = "RA"
	PanelGeneralPlasticSurgery  ReviewPanel = "SU"
	PanelClinicalToxicology     ReviewPanel = "TX"
)

// IsValid reports whether p is a recognized review panel code.
func (p ReviewPanel) IsValid() bool {
	switch p {
	case PanelAnesthesiology, PanelCardiovascular, PanelClinicalChemistry,
		PanelDental, PanelEarNoseThroat, PanelGastroenterologyUro,
		PanelGeneralHospital, PanelHematology, PanelImmunology,
		PanelMicrobiology, PanelNeurology, PanelObstetricsGynecology,
		PanelOphthalmic, PanelOrthopedic, PanelPathology,
		PanelPhysicalMedicine, PanelRadiology, PanelGeneralPlasticSurgery,
		PanelClinicalToxicology:
		return true
	}
	return false
}

// Modality is an imaging or diagnostic device modality, mapped to the
// RADLEX lexicon where one applies.
type Modality string

const (
	ModalityCT             Modality = "CT"
	ModalityMR             Modality = "MR"
	ModalityMG             Modality = "MG"
	ModalityPostProcessing Modality = "PostProcessing"
	ModalityUS             Modality = "US"
	ModalityEEG            Modality = "EEG"
	ModalityECG            Modality = "ECG"
	ModalityXray           Modality = "Xray"
	ModalityXA             Modality = "Xray Angiography"
	ModalityNM             Modality = "Nuclear Medicine"
	ModalityPET            Modality = "PET"
	ModalitySPECT          Modality = "SPECT"
	ModalityPathology      Modality = "Pathology"
	ModalityEndoscopy      Modality = "Endoscopy"
	ModalityOphthalmology  Modality = "Ophthalmology"
	ModalityDermatology    Modality = "Dermatology"
)

// IsValid reports whether m is a recognized modality.
func (m Modality) IsValid() bool {
	switch m {
	case ModalityCT, ModalityMR, ModalityMG, ModalityPostProcessing,
		ModalityUS, ModalityEEG, ModalityECG, ModalityXray, ModalityXA,
		ModalityNM, ModalityPET, ModalitySPECT, ModalityPathology,
		ModalityEndoscopy, ModalityOphthalmology, ModalityDermatology:
		return true
	}
	return false
}
