package usecase

// ClinicalDomain is the primary clinical discipline a use case serves.
type ClinicalDomain string

const (
	DomainRadiology          ClinicalDomain = "radiology"
	DomainPathology          ClinicalDomain = "pathology"
	DomainCardiology         ClinicalDomain = "cardiology"
	DomainOphthalmology      ClinicalDomain = "ophthalmology"
	DomainDermatology        ClinicalDomain = "dermatology"
	DomainOncology           ClinicalDomain = "oncology"
	DomainNeurology          ClinicalDomain = "neurology"
	DomainGastroenterology   ClinicalDomain = "gastroenterology"
	DomainPulmonology        ClinicalDomain = "pulmonology"
	DomainEmergencyMedicine  ClinicalDomain = "emergency_medicine"
	DomainPrimaryCare        ClinicalDomain = "primary_care"
	DomainSurgery            ClinicalDomain = "surgery"
	DomainClinicalOperations ClinicalDomain = "clinical_operations"
	DomainLaboratory         ClinicalDomain = "laboratory"
	DomainOther              ClinicalDomain = "other"
)

// IsValid reports whether d is a recognized clinical domain.
func (d ClinicalDomain) IsValid() bool {
	switch d {
	case DomainRadiology, DomainPathology, DomainCardiology,
		DomainOphthalmology, DomainDermatology, DomainOncology,
		DomainNeurology, DomainGastroenterology, DomainPulmonology,
		DomainEmergencyMedicine, DomainPrimaryCare, DomainSurgery,
		DomainClinicalOperations, DomainLaboratory, DomainOther:
		return true
	}
	return false
}

// ClinicalSpecialty narrows a clinical domain to a subspecialty.
type ClinicalSpecialty string

const (
	SpecialtyNeuroradiology           ClinicalSpecialty = "neuroradiology"
	SpecialtyMusculoskeletalRadiology ClinicalSpecialty = "musculoskeletal_radiology"
	SpecialtyBreastImaging            ClinicalSpecialty = "breast_imaging"
	SpecialtyAbdominalRadiology       ClinicalSpecialty = "abdominal_radiology"
	SpecialtyThoracicRadiology        ClinicalSpecialty = "thoracic_radiology"
	SpecialtyInterventionalRadiology  ClinicalSpecialty = "interventional_radiology"
	SpecialtyPediatricRadiology       ClinicalSpecialty = "pediatric_radiology"
	SpecialtySurgicalPathology        ClinicalSpecialty = "surgical_pathology"
	SpecialtyCytopathology            ClinicalSpecialty = "cytopathology"
	SpecialtyHematopathology          ClinicalSpecialty = "hematopathology"
	SpecialtyDermatopathology         ClinicalSpecialty = "dermatopathology"
	SpecialtyCardiology               ClinicalSpecialty = "cardiology"
	SpecialtyOphthalmology            ClinicalSpecialty = "ophthalmology"
	SpecialtyDermatology              ClinicalSpecialty = "dermatology"
	SpecialtyGastroenterology         ClinicalSpecialty = "gastroenterology"
	SpecialtyPulmonology              ClinicalSpecialty = "pulmonology"
	SpecialtyNeurology                ClinicalSpecialty = "neurology"
	SpecialtyEmergencyMedicine        ClinicalSpecialty = "emergency_medicine"
	SpecialtyGeneral                  ClinicalSpecialty = "general"
	SpecialtyOther                    ClinicalSpecialty = "other"
)

// IsValid reports whether s is a recognized clinical specialty.
func (s ClinicalSpecialty) IsValid() bool {
	switch s {
	case SpecialtyNeuroradiology, SpecialtyMusculoskeletalRadiology,
		SpecialtyBreastImaging, SpecialtyAbdominalRadiology,
		SpecialtyThoracicRadiology, SpecialtyInterventionalRadiology,
		SpecialtyPediatricRadiology, SpecialtySurgicalPathology,
		SpecialtyCytopathology, SpecialtyHematopathology,
		SpecialtyDermatopathology, SpecialtyCardiology,
		SpecialtyOphthalmology, SpecialtyDermatology,
		SpecialtyGastroenterology, SpecialtyPulmonology,
		SpecialtyNeurology, SpecialtyEmergencyMedicine,
		SpecialtyGeneral, SpecialtyOther:
		return true
	}
	return false
}

// DeploymentModel describes where the AI solution runs.
type DeploymentModel string

const (
	DeployCloud     DeploymentModel = "cloud"
	DeployOnPremise DeploymentModel = "on_premise"
	DeployHybrid    DeploymentModel = "hybrid"
	DeployEdge      DeploymentModel = "edge"
)

// IsValid reports whether m is a recognized deployment model.
func (m DeploymentModel) IsValid() bool {
	switch m {
	case DeployCloud, DeployOnPremise, DeployHybrid, DeployEdge:
		return true
	}
	return false
}

// IntegrationTarget names a hospital system the solution must plug
// into.
type IntegrationTarget string

const (
	TargetPACS     IntegrationTarget = "PACS"
	TargetRIS      IntegrationTarget = "RIS"
	TargetEHR      IntegrationTarget = "EHR"
	TargetEMR      IntegrationTarget = "EMR"
	TargetLIS      IntegrationTarget = "LIS"
	TargetWorklist IntegrationTarget = "worklist"
	TargetViewer   IntegrationTarget = "viewer"
	TargetVNA      IntegrationTarget = "VNA"
	TargetFHIR     IntegrationTarget = "FHIR"
	TargetDICOM    IntegrationTarget = "DICOM"
	TargetOther    IntegrationTarget = "other"
)

// IsValid reports whether t is a recognized integration target.
func (t IntegrationTarget) IsValid() bool {
	switch t {
	case TargetPACS, TargetRIS, TargetEHR, TargetEMR, TargetLIS,
		TargetWorklist, TargetViewer, TargetVNA, TargetFHIR,
		TargetDICOM, TargetOther:
		return true
	}
	return false
}

// EvidenceStrength grades the clinical evidence behind a use case.
type EvidenceStrength string

const (
	EvidenceStrong      EvidenceStrength = "strong"
	EvidenceModerate    EvidenceStrength = "moderate"
	EvidenceLimited     EvidenceStrength = "limited"
	EvidenceEmerging    EvidenceStrength = "emerging"
	EvidenceTheoretical EvidenceStrength = "theoretical"
)

// IsValid reports whether s is a recognized evidence strength.
func (s EvidenceStrength) IsValid() bool {
	switch s {
	case EvidenceStrong, EvidenceModerate, EvidenceLimited,
		EvidenceEmerging, EvidenceTheoretical:
		return true
	}
	return false
}

// Status is the curation lifecycle state of a use case.
type Status string

const (
	StatusDraft      Status = "draft"
	StatusInReview   Status = "in_review"
	StatusPublished  Status = "published"
	StatusArchived   Status = "archived"
	StatusDeprecated Status = "deprecated"
)

// IsValid reports whether s is a recognized status.
func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusInReview, StatusPublished,
		StatusArchived, StatusDeprecated:
		return true
	}
	return false
}
