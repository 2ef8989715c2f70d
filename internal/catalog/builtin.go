package catalog

import "github.com/verityai/capital-recommender/internal/refdata"

// BuiltIn returns the compiled-in UK funding-source catalog. Callers receive
// a fresh slice on every call; the records inside are value copies.
func BuiltIn() []Source {
	return []Source{
		{
			SourceID:         "barclays_business_loan",
			Name:             "Barclays Business Loan",
			Type:             refdata.TypeBankLoan,
			Category:         "traditional_banking",
			Amount:           AmountRange{Min: 5000, Max: 250000},
			Sectors:          []string{"all"},
			ExcludedSectors:  []string{"adult_entertainment", "gambling", "weapons"},
			MinTradingYears:  2,
			MinAnnualRevenue: 50000,
			MaxDebtRatio:     2.5,
			InterestRate:     &RateRange{Min: 6.9, Max: 24.9},
			ApprovalTimeline: "2-4 weeks",
			SuccessFactors:   []string{"good_credit", "stable_cashflow", "asset_backing"},
			Commission:       CommissionRange{Min: 1.5, Max: 3.0},
			Contact:          Contact{Email: "business@barclays.co.uk", Phone: "+44 345 734 5345"},
			Availability:     refdata.StatusAcceptingApplications,
			Appetite:         refdata.AppetiteSelective,
			LastUpdated:      "2025-09-06",
		},
		{
			SourceID:         "lloyds_commercial_finance",
			Name:             "Lloyds Commercial Finance",
			Type:             refdata.TypeAssetFinance,
			Category:         "traditional_banking",
			Amount:           AmountRange{Min: 10000, Max: 2000000},
			Sectors:          []string{"manufacturing", "construction", "transport", "technology"},
			ExcludedSectors:  []string{"retail", "hospitality"},
			MinTradingYears:  1,
			MinAnnualRevenue: 100000,
			AssetRequirement: "equipment_vehicles_property",
			InterestRate:     &RateRange{Min: 4.5, Max: 15.0},
			ApprovalTimeline: "1-3 weeks",
			SuccessFactors:   []string{"asset_backing", "cashflow", "sector_experience"},
			Commission:       CommissionRange{Min: 2.0, Max: 5.0},
			Contact:          Contact{Email: "commercial@lloydsbank.com", Phone: "+44 345 606 2172"},
			Availability:     refdata.StatusAcceptingApplications,
			Appetite:         refdata.AppetiteAggressive,
			LastUpdated:      "2025-09-06",
		},
		{
			SourceID:         "funding_circle",
			Name:             "Funding Circle Business Loans",
			Type:             refdata.TypeBankLoan,
			Category:         "alternative_lending",
			Amount:           AmountRange{Min: 10000, Max: 500000},
			Sectors:          []string{"all"},
			ExcludedSectors:  []string{"gambling", "adult_entertainment", "cryptocurrency"},
			MinTradingYears:  2,
			MinAnnualRevenue: 120000,
			CreditScoreMin:   600,
			InterestRate:     &RateRange{Min: 7.5, Max: 18.9},
			ApprovalTimeline: "1-2 weeks",
			SuccessFactors:   []string{"good_credit", "consistent_revenue", "positive_cashflow"},
			Commission:       CommissionRange{Min: 1.0, Max: 2.5},
			Contact:          Contact{Email: "brokers@fundingcircle.com", Phone: "+44 203 198 9460"},
			Availability:     refdata.StatusAcceptingApplications,
			Appetite:         refdata.AppetiteNeutral,
			LastUpdated:      "2025-09-06",
		},
		{
			SourceID:         "uk_angel_network",
			Name:             "UK Angel Investment Network",
			Type:             refdata.TypeAngelInvestment,
			Category:         "equity_investment",
			Amount:           AmountRange{Min: 25000, Max: 500000},
			Sectors:          []string{"technology", "healthcare", "fintech", "clean_energy"},
			ExcludedSectors:  []string{"retail", "hospitality", "construction"},
			MinTradingYears:  0,
			MaxTradingYears:  5,
			EquityRange:      &RateRange{Min: 5, Max: 25},
			ApprovalTimeline: "4-12 weeks",
			SuccessFactors:   []string{"innovation", "scalability", "strong_team", "market_traction"},
			Commission:       CommissionRange{Min: 3.0, Max: 7.0},
			Contact:          Contact{Email: "deals@ukangelnetwork.co.uk", Phone: "+44 207 123 4567"},
			Availability:     refdata.StatusAcceptingApplications,
			Appetite:         refdata.AppetiteAggressive,
			LastUpdated:      "2025-09-06",
		},
		{
			SourceID:         "seedcamp_vc",
			Name:             "Seedcamp Venture Capital",
			Type:             refdata.TypeVentureCapital,
			Category:         "equity_investment",
			Amount:           AmountRange{Min: 250000, Max: 5000000},
			Sectors:          []string{"technology", "ai", "fintech", "healthtech"},
			ExcludedSectors:  []string{"traditional_retail", "manufacturing"},
			MinTradingYears:  0,
			MaxTradingYears:  7,
			EquityRange:      &RateRange{Min: 15, Max: 40},
			ApprovalTimeline: "8-24 weeks",
			SuccessFactors:   []string{"disruptive_technology", "scalable_business_model", "experienced_team"},
			Commission:       CommissionRange{Min: 2.0, Max: 5.0},
			Contact:          Contact{Email: "applications@seedcamp.com", Phone: "+44 207 183 1855"},
			Availability:     refdata.StatusAcceptingApplications,
			Appetite:         refdata.AppetiteSelective,
			LastUpdated:      "2025-09-06",
		},
		{
			SourceID:         "crowdcube",
			Name:             "Crowdcube Equity Crowdfunding",
			Type:             refdata.TypeCrowdfunding,
			Category:         "alternative_funding",
			Amount:           AmountRange{Min: 10000, Max: 1000000},
			Sectors:          []string{"consumer_products", "technology", "food_drink", "retail"},
			ExcludedSectors:  []string{"gambling", "adult_entertainment"},
			MinTradingYears:  1,
			ApprovalTimeline: "2-8 weeks",
			SuccessFactors:   []string{"consumer_appeal", "marketing_ready", "compelling_story"},
			Commission:       CommissionRange{Min: 3.0, Max: 8.0},
			Contact:          Contact{Email: "partnerships@crowdcube.com", Phone: "+44 117 316 7199"},
			Availability:     refdata.StatusAcceptingApplications,
			Appetite:         refdata.AppetiteNeutral,
			LastUpdated:      "2025-09-06",
		},
		{
			SourceID:              "innovate_uk_grant",
			Name:                  "Innovate UK Smart Grants",
			Type:                  refdata.TypeGovernmentGrant,
			Category:              "government_funding",
			Amount:                AmountRange{Min: 25000, Max: 500000},
			Sectors:               []string{"technology", "healthcare", "clean_energy", "advanced_manufacturing"},
			ExcludedSectors:       []string{"retail", "hospitality", "traditional_services"},
			MinTradingYears:       0,
			InnovationRequirement: true,
			ApprovalTimeline:      "6-16 weeks",
			SuccessFactors:        []string{"innovation", "technical_merit", "commercial_potential", "uk_benefit"},
			Commission:            CommissionRange{Min: 5.0, Max: 15.0},
			Contact:               Contact{Email: "support@innovateuk.ukri.org", Phone: "+44 300 321 4357"},
			Availability:          refdata.StatusSeasonalRounds,
			Appetite:              refdata.AppetiteNeutral,
			LastUpdated:           "2025-09-06",
		},
		{
			SourceID:                "london_family_office",
			Name:                    "London Family Office Network",
			Type:                    refdata.TypeFamilyOffice,
			Category:                "private_wealth",
			Amount:                  AmountRange{Min: 100000, Max: 5000000},
			Sectors:                 []string{"technology", "healthcare", "real_estate", "luxury_goods"},
			ExcludedSectors:         []string{"gambling", "weapons", "tobacco"},
			MinTradingYears:         2,
			RelationshipRequirement: true,
			ApprovalTimeline:        "4-16 weeks",
			SuccessFactors:          []string{"relationship_fit", "long_term_potential", "family_values_alignment"},
			Commission:              CommissionRange{Min: 1.0, Max: 4.0},
			Contact:                 Contact{Email: "opportunities@londonfamilyoffice.com", Phone: "+44 207 456 7890"},
			Availability:            refdata.StatusRelationshipBased,
			Appetite:                refdata.AppetiteSelective,
			LastUpdated:             "2025-09-06",
		},
		{
			SourceID:              "scottish_enterprise",
			Name:                  "Scottish Enterprise Growth Finance",
			Type:                  refdata.TypeRegionalGrant,
			Category:              "government_funding",
			Amount:                AmountRange{Min: 50000, Max: 2000000},
			Sectors:               []string{"technology", "manufacturing", "life_sciences", "energy"},
			ExcludedSectors:       []string{"retail", "hospitality"},
			GeographicRequirement: []string{"scotland"},
			MinTradingYears:       1,
			ApprovalTimeline:      "8-12 weeks",
			SuccessFactors:        []string{"scottish_location", "job_creation", "export_potential"},
			Commission:            CommissionRange{Min: 2.0, Max: 6.0},
			Contact:               Contact{Email: "finance@scottish-enterprise.com", Phone: "+44 141 248 2700"},
			Availability:          refdata.StatusAcceptingApplications,
			Appetite:              refdata.AppetiteAggressive,
			LastUpdated:           "2025-09-06",
		},
	}
}
