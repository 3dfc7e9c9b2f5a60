package refdata

// Seed catalog: the cooperative's published credit lines.
func DefaultRates() []InterestRate {
	return []InterestRate{
		{ID: "R1", Category: "Consumo Ordinario", Rate: 16.06, MaxTerm: 48},
		{ID: "R2", Category: "Consumo Prioritario", Rate: 16.06, MaxTerm: 60},
		{ID: "R3", Category: "Microcrédito Minorista", Rate: 28.23, MaxTerm: 24},
		{ID: "R4", Category: "Microcrédito Acumulación Simple", Rate: 24.89, MaxTerm: 36},
		{ID: "R5", Category: "Microcrédito Acumulación Ampliada", Rate: 22.05, MaxTerm: 48},
		{ID: "R6", Category: "Inversión Inmobiliaria", Rate: 9.50, MaxTerm: 120},
		{ID: "R7", Category: "Productivo PYMES", Rate: 11.83, MaxTerm: 60},
		{ID: "R8", Category: "Educativo", Rate: 9.00, MaxTerm: 48},
		{ID: "R9", Category: "Emergente / Salud", Rate: 12.00, MaxTerm: 12},
	}
}

func DefaultConfig() GlobalConfig {
	return GlobalConfig{
		MinLoanAmount: 100,
		MaxLoanAmount: 100000,
		MaxGlobalTerm: 120,
	}
}
