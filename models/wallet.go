// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// LoanPurpose is the declared use of a micro-loan.
type LoanPurpose string

const (
	LoanPurposeAgriculture LoanPurpose = "agriculture"
	LoanPurposeBusiness    LoanPurpose = "business"
	LoanPurposeEducation   LoanPurpose = "education"
	LoanPurposeHealth      LoanPurpose = "health"
	LoanPurposeEquipment   LoanPurpose = "equipment"
	LoanPurposeOther       LoanPurpose = "other"
)

// LoanTerms lists the repayment terms, in months, a loan can be requested for.
var LoanTerms = []int{3, 6, 12, 18, 24}

// LoanApplication is a micro-loan application filled in by the wallet owner.
// Monetary values are expressed in the smallest display unit of Currency.
type LoanApplication struct {
	ApplicationID   string      `json:"applicationId"`
	Amount          float64     `json:"amount"`
	Currency        string      `json:"currency"`
	Purpose         LoanPurpose `json:"purpose"`
	TermMonths      int         `json:"term"`
	MonthlyIncome   float64     `json:"income"`
	MonthlyExpenses float64     `json:"expenses"`
	Description     string      `json:"description,omitempty"`
	AgreeToTerms    bool        `json:"agreeToTerms"`
	SubmittedAt     time.Time   `json:"submittedAt"`
}

// DisposableIncome returns income minus expenses.
func (l LoanApplication) DisposableIncome() float64 {
	return l.MonthlyIncome - l.MonthlyExpenses
}

// CredentialType identifies a credential that may be requested from an issuer.
type CredentialType string

const (
	CredentialGovernmentID CredentialType = "gov-id"
	CredentialEducation    CredentialType = "education"
	CredentialProfessional CredentialType = "professional"
	CredentialHealth       CredentialType = "health"
)

// CredentialRequest asks an issuer to issue a verifiable credential to the
// wallet's decentralized identifier.
type CredentialRequest struct {
	RequestID   string         `json:"requestId"`
	Type        CredentialType `json:"type"`
	Issuer      string         `json:"issuer,omitempty"`
	SubjectDID  string         `json:"subjectDid"`
	RequestedAt time.Time      `json:"requestedAt"`
}

// VoiceLanguage is the language the enrollment phrases were recorded in.
type VoiceLanguage string

const (
	VoiceLanguageEnglish VoiceLanguage = "en"
	VoiceLanguageSwahili VoiceLanguage = "sw"
	VoiceLanguageYoruba  VoiceLanguage = "yo"
)

// VoiceEnrollmentSteps is the number of phrases recorded during enrollment.
const VoiceEnrollmentSteps = 3

// VoiceEnrollment is a completed voice enrollment. Embedding is the raw voice
// embedding produced on device; VoiceHash is its hex-encoded digest that is
// registered together with the DID.
type VoiceEnrollment struct {
	EnrollmentID   string        `json:"enrollmentId"`
	DID            string        `json:"did"`
	Language       VoiceLanguage `json:"language"`
	CompletedSteps int           `json:"completedSteps"`
	Embedding      []byte        `json:"embedding,omitempty"`
	VoiceHash      string        `json:"voiceHash"`
	EnrolledAt     time.Time     `json:"enrolledAt"`
}

// ProfileUpdate is a partial edit of the wallet owner's profile. Nil fields
// are left unchanged by the remote service.
type ProfileUpdate struct {
	FullName    *string   `json:"fullName,omitempty"`
	PhoneNumber *string   `json:"phoneNumber,omitempty"`
	Email       *string   `json:"email,omitempty"`
	Location    *string   `json:"location,omitempty"`
	Language    *string   `json:"language,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// IsEmpty reports whether the update changes nothing.
func (p ProfileUpdate) IsEmpty() bool {
	return p.FullName == nil && p.PhoneNumber == nil && p.Email == nil &&
		p.Location == nil && p.Language == nil
}
