package summary

import "math"

// SalaryHourFactor converts a monthly base salary into an overtime hourly
// rate. The factor is fixed by the pay agreement this application models;
// it is a domain constant, not something to derive or round.
const SalaryHourFactor = 0.0079545

// HourlyRate derives the overtime rate from a base salary. Absent, negative
// or non-finite salaries yield nil rather than an error so the derivation
// stays total over legacy data.
func HourlyRate(baseSalary *float64) *float64 {
	if baseSalary == nil || *baseSalary < 0 || math.IsNaN(*baseSalary) || math.IsInf(*baseSalary, 0) {
		return nil
	}
	rate := *baseSalary * SalaryHourFactor
	return &rate
}

// TotalPay is hours times rate, or nil when either side is absent.
func TotalPay(hours, hourlyRate *float64) *float64 {
	if hours == nil || hourlyRate == nil {
		return nil
	}
	total := *hours * *hourlyRate
	return &total
}
