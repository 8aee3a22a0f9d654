package mesh

import (
	"math"

	"github.com/soypat/involute"
)

// NoiseParams are the operating conditions of a gear pair for NoiseLevel.
type NoiseParams struct {
	HelixAngle   float64 // helix angle beta [rad], 0 for spur gears
	Ratio        float64 // gear ratio u = zB/zA
	ContactRatio float64 // transverse contact ratio, i.e. Result.Mean
	Speed        float64 // pitch line velocity [m/s]
	Power        float64 // transmitted power [W], 0 leaves the term out
	Factor       float64 // application factor, 0 leaves the term out
}

// NoiseLevel returns a qualitative sound level estimate for a gear pair:
//
//	L = 20*(1-tan(beta/2))*u^(1/8)/eps^(1/4) * sqrt((5.56+sqrt(v))/5.56)
//	    + 20*log10(W/1000) + 20*log10(X)
//
// The value is only meaningful for comparing designs. Higher contact
// ratios give quieter pairs.
func NoiseLevel(p NoiseParams) (float64, error) {
	switch {
	case !(p.ContactRatio > 0):
		return 0, &involute.InvalidParameterError{Param: "contact ratio", Value: p.ContactRatio, Reason: "must be positive"}
	case !(p.Ratio >= 0):
		return 0, &involute.InvalidParameterError{Param: "ratio", Value: p.Ratio, Reason: "must not be negative"}
	case !(p.Speed >= 0):
		return 0, &involute.InvalidParameterError{Param: "speed", Value: p.Speed, Reason: "must not be negative"}
	case !(p.Power >= 0):
		return 0, &involute.InvalidParameterError{Param: "power", Value: p.Power, Reason: "must not be negative"}
	case !(p.Factor >= 0):
		return 0, &involute.InvalidParameterError{Param: "factor", Value: p.Factor, Reason: "must not be negative"}
	case !(math.Abs(p.HelixAngle) < math.Pi/2):
		return 0, &involute.InvalidParameterError{Param: "helix angle", Value: p.HelixAngle, Reason: "must be in (-π/2,π/2)"}
	}
	l := 20 * (1 - math.Tan(p.HelixAngle/2)) * math.Pow(p.Ratio, 1.0/8) / math.Pow(p.ContactRatio, 1.0/4)
	l *= math.Sqrt((5.56 + math.Sqrt(p.Speed)) / 5.56)
	if p.Power != 0 {
		l += 20 * math.Log10(p.Power/1000)
	}
	if p.Factor != 0 {
		l += 20 * math.Log10(p.Factor)
	}
	return l, nil
}
