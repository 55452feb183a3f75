package output

// DefaultAssumptions lists key modeling assumptions rendered in detailed outputs.
// Future: could be loaded from the active policy file instead of hardcoded text.
var DefaultAssumptions = []string{
	"HDB concessionary loan rate: 2.6% annually (CPF OA rate + 0.1%)",
	"Loan-to-value limit: 75% of flat price for HDB loans",
	"Mortgage servicing ratio: 30% of gross monthly income",
	"CPF OA savings earn 2.5% annually, credited monthly",
	"CPF contributions at statutory age-banded rates on gross income",
	"Buyer's stamp duty and legal fees at current HDB scales",
	"Housing grants (EHG, family grants) not modeled",
}
