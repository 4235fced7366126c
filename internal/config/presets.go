package config

import "sort"

const (
	desktopUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0 Safari/537.36"
	macUA     = "Mozilla/5.0 (Macintosh; Intel Mac OS X 14_5) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.5 Safari/605.1.15"
	androidUA = "Mozilla/5.0 (Linux; Android 11; SM-A125F) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Mobile Safari/537.36"
	iphoneUA  = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_5 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.5 Mobile/15E148 Safari/604.1"
)

var Profiles = map[string]DeviceProfile{
	"desktop-rtx": {
		UserAgent: desktopUA, PixelRatio: 1.25, MemoryGB: 16, WebGL2: true, WebGL1: true,
		Renderer: "WebKit WebGL", UnmaskedRenderer: "ANGLE (NVIDIA, NVIDIA GeForce RTX 3070 Direct3D11 vs_5_0 ps_5_0)",
		AdapterType: "discrete",
	},
	"macbook-m": {
		UserAgent: macUA, PixelRatio: 2, MemoryGB: 8, WebGL2: true, WebGL1: true,
		Renderer: "Apple GPU", UnmaskedRenderer: "Apple M2",
	},
	"office-laptop": {
		UserAgent: desktopUA, PixelRatio: 1, MemoryGB: 8, WebGL2: true, WebGL1: true,
		Renderer: "WebKit WebGL", UnmaskedRenderer: "ANGLE (Intel, Intel(R) UHD Graphics 620 Direct3D11 vs_5_0 ps_5_0)",
		AdapterType: "integrated",
	},
	"budget-android": {
		UserAgent: androidUA, PixelRatio: 2, MemoryGB: 3, WebGL2: true, WebGL1: true,
		Renderer: "WebKit WebGL", UnmaskedRenderer: "Mali-G52",
	},
	"flagship-phone": {
		UserAgent: iphoneUA, PixelRatio: 3, WebGL2: true, WebGL1: true,
		Renderer: "Apple GPU",
	},
	"low-memory": {
		UserAgent: desktopUA, PixelRatio: 1, MemoryGB: 2, WebGL2: true, WebGL1: true,
		Renderer: "WebKit WebGL", UnmaskedRenderer: "ANGLE (NVIDIA, NVIDIA GeForce GTX 1060 Direct3D11 vs_5_0 ps_5_0)",
	},
	"legacy-webgl1": {
		UserAgent: desktopUA, PixelRatio: 1, MemoryGB: 4, WebGL1: true,
		Renderer: "Mesa DRI Intel(R) HD Graphics 4000",
	},
	"no-webgl": {
		UserAgent: desktopUA, PixelRatio: 1, MemoryGB: 8,
	},
	"broken-driver": {
		UserAgent: desktopUA, PixelRatio: 1, MemoryGB: 8, WebGL2: true, WebGL1: true,
		ContextError: "GPU process crashed",
	},
}

func GetProfile(name string) (DeviceProfile, bool) {
	p, ok := Profiles[name]
	return p, ok
}

func ListProfiles() []string {
	names := make([]string, 0, len(Profiles))
	for name := range Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
