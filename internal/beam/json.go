package beam

import (
	"encoding/json"
	"math"
)

// finite returns nil for NaN and ±Inf so they encode as JSON null.
func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// MarshalJSON encodes non-finite quantities (for example εt when As = 0)
// as null, which encoding/json would otherwise reject.
func (r Results) MarshalJSON() ([]byte, error) {
	type plain Results
	return json.Marshal(struct {
		plain
		Beta1      *float64 `json:"beta1"`
		A          *float64 `json:"a"`
		C          *float64 `json:"c"`
		EpsilonT   *float64 `json:"epsilon_t"`
		EpsilonY   *float64 `json:"epsilon_y"`
		Rho        *float64 `json:"rho"`
		RhoB       *float64 `json:"rho_b"`
		RhoMax     *float64 `json:"rho_max"`
		RhoMin     *float64 `json:"rho_min"`
		Mn         *float64 `json:"Mn"`
		MnKipFt    *float64 `json:"Mn_kip_ft"`
		Phi        *float64 `json:"phi"`
		PhiMn      *float64 `json:"phiMn"`
		PhiMnKipFt *float64 `json:"phiMn_kip_ft"`
	}{
		plain:      plain(r),
		Beta1:      finite(r.Beta1),
		A:          finite(r.A),
		C:          finite(r.C),
		EpsilonT:   finite(r.EpsilonT),
		EpsilonY:   finite(r.EpsilonY),
		Rho:        finite(r.Rho),
		RhoB:       finite(r.RhoB),
		RhoMax:     finite(r.RhoMax),
		RhoMin:     finite(r.RhoMin),
		Mn:         finite(r.Mn),
		MnKipFt:    finite(r.MnKipFt),
		Phi:        finite(r.Phi),
		PhiMn:      finite(r.PhiMn),
		PhiMnKipFt: finite(r.PhiMnKipFt),
	})
}
