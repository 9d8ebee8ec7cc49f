package regattascraper

import "testing"

func TestCountryFromSail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		sail     string
		wantCode string
		wantFlag string
	}{
		{name: "hong kong", sail: "HKG 59", wantCode: "HK", wantFlag: "🇭🇰"},
		{name: "united states", sail: "USA 123", wantCode: "US", wantFlag: "🇺🇸"},
		{name: "germany differs from ioc letters", sail: "GER 1162", wantCode: "DE", wantFlag: "🇩🇪"},
		{name: "netherlands", sail: "NED 412", wantCode: "NL", wantFlag: "🇳🇱"},
		{name: "switzerland", sail: "SUI 318", wantCode: "CH", wantFlag: "🇨🇭"},
		{name: "great britain", sail: "GBR 820", wantCode: "GB", wantFlag: "🇬🇧"},
		{name: "unknown prefix truncates", sail: "ZZZ 1", wantCode: "ZZ", wantFlag: "🏳️"},
		{name: "lowercase sail", sail: "hkg 59", wantCode: "HK", wantFlag: "🇭🇰"},
		{name: "no space before digits", sail: "POR70", wantCode: "PT", wantFlag: "🇵🇹"},
		{name: "leading whitespace", sail: "  DEN 404", wantCode: "DK", wantFlag: "🇩🇰"},
		{name: "single letter prefix", sail: "Z 9", wantCode: "Z", wantFlag: "🏳️"},
		{name: "two letter unknown prefix", sail: "QQ 5", wantCode: "QQ", wantFlag: "🏳️"},
		{name: "digits only", sail: "1234", wantCode: "", wantFlag: "🏳️"},
		{name: "empty sail", sail: "", wantCode: "", wantFlag: "🏳️"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, flag := CountryFromSail(tt.sail)
			if code != tt.wantCode {
				t.Fatalf("CountryFromSail(%q) code = %q, want %q", tt.sail, code, tt.wantCode)
			}
			if flag != tt.wantFlag {
				t.Fatalf("CountryFromSail(%q) flag = %q, want %q", tt.sail, flag, tt.wantFlag)
			}
		})
	}
}

func TestOlympicTableCoveredByFlagTable(t *testing.T) {
	t.Parallel()

	for ioc, iso := range olympicToISO2 {
		if _, ok := flagByISO2[iso]; !ok {
			t.Fatalf("ioc code %s maps to %s which has no flag entry", ioc, iso)
		}
	}
}
