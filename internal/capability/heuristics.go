package capability

import (
	"regexp"

	"github.com/gogpu/gputypes"
)

// LowMemoryGB is the reported memory below which the tier is forced to low.
const LowMemoryGB = 4.0

var (
	mobilePattern  = regexp.MustCompile(`(?i)Android|webOS|iPhone|iPad|iPod|BlackBerry|IEMobile|Opera Mini|Mobile`)
	highGPUPattern = regexp.MustCompile(`(?i)NVIDIA|GeForce|RTX|GTX|Quadro|Radeon RX|Radeon Pro|Apple M[0-9]|Apple GPU`)
	lowGPUPattern  = regexp.MustCompile(`(?i)Intel.*(HD|UHD)|Mali|Adreno \(?TM\)? ?[1-5][0-9]{2}\b|PowerVR|SwiftShader|llvmpipe|Software`)
)

// GPUClass is the hardware-name classification of a renderer string.
type GPUClass int

const (
	GPUUnknown GPUClass = iota
	GPULowEnd
	GPUHigh
)

func (c GPUClass) String() string {
	switch c {
	case GPULowEnd:
		return "low-end"
	case GPUHigh:
		return "high-performance"
	}
	return "unknown"
}

func IsMobile(userAgent string) bool {
	return mobilePattern.MatchString(userAgent)
}

// ClassifyRenderer matches a renderer description against the low-end
// pattern set first, so "Intel HD" inside an ANGLE string that also names a
// discrete vendor still counts as integrated.
func ClassifyRenderer(renderer string) GPUClass {
	switch {
	case renderer == "":
		return GPUUnknown
	case lowGPUPattern.MatchString(renderer):
		return GPULowEnd
	case highGPUPattern.MatchString(renderer):
		return GPUHigh
	}
	return GPUUnknown
}

// ClassifyAdapter turns an adapter device type into a GPU class.
func ClassifyAdapter(t gputypes.DeviceType) GPUClass {
	switch t {
	case gputypes.DeviceTypeDiscreteGPU:
		return GPUHigh
	case gputypes.DeviceTypeIntegratedGPU:
		return GPULowEnd
	}
	return GPUUnknown
}

// TierFor combines a GPU class with the device form factor.
//
//	class     desktop  mobile
//	high      high     medium
//	low-end   medium   low
//	unknown   medium   medium
func TierFor(class GPUClass, mobile bool) Tier {
	switch class {
	case GPUHigh:
		if mobile {
			return TierMedium
		}
		return TierHigh
	case GPULowEnd:
		if mobile {
			return TierLow
		}
		return TierMedium
	}
	return TierMedium
}
