package knudsen

// pressure conversion factors from mbar
const (
	TorrPerMbar = 0.750062
	AtmPerMbar  = 0.000986923
	PsiPerMbar  = 0.0145038
	PaPerMbar   = 100.0
)

// MbarToTorr converts mbar to Torr.
func MbarToTorr(p float64) float64 { return p * TorrPerMbar }

// MbarToAtm converts mbar to standard atmospheres.
func MbarToAtm(p float64) float64 { return p * AtmPerMbar }

// MbarToPsi converts mbar to pounds-force per square inch.
func MbarToPsi(p float64) float64 { return p * PsiPerMbar }

// MbarToPa converts mbar to Pa.
func MbarToPa(p float64) float64 { return p * PaPerMbar }

// CmToM converts cm to m.
func CmToM(x float64) float64 { return x * 1e-2 }

// MicronToCm converts µm to cm.
func MicronToCm(x float64) float64 { return x * 1e-4 }
