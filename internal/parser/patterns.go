package parser

import "regexp"

// The pattern tables below are ordered and iterated first-match-wins.
// Reordering entries changes extraction results for real-world filenames,
// so the order is part of the contract.

// seasonEpisodePatterns capture season in group 1 and episode in group 2.
var seasonEpisodePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)[Ss](\d{1,2})[Ee](\d{1,2})`),
	regexp.MustCompile(`(?i)[Ss](\d{1,2})\s*[Ee](\d{1,2})`),
	regexp.MustCompile(`(?i)(\d{1,2})[xX](\d{1,2})`),
	regexp.MustCompile(`(?i)Season\s*(\d{1,2})\s*Episode\s*(\d{1,2})`),
	regexp.MustCompile(`(?i)S(\d{1,2})E(\d{1,2})`),
}

// seasonFallbackPatterns apply when no combined pattern matched.
var seasonFallbackPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Season\s*(\d{1,2})`),
	regexp.MustCompile(`(?i)Series\s*(\d{1,2})`),
	regexp.MustCompile(`(?i)S(\d{1,2})`),
	regexp.MustCompile(`(?i)(\d{1,2})x\d{1,2}`),
}

// episodeFallbackPatterns apply when no combined pattern matched.
var episodeFallbackPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Episode\s*(\d{1,2})`),
	regexp.MustCompile(`(?i)Ep\s*(\d{1,2})`),
	regexp.MustCompile(`(?i)E(\d{1,2})`),
	regexp.MustCompile(`(?i)\d{1,2}x(\d{1,2})`),
}

// yearPatterns are tried in order; per pattern only the first match is
// considered, and a value outside [1900, 2100] moves on to the next pattern.
var yearPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d{4})`),
	regexp.MustCompile(`(?i)\((\d{4})\)`),
	regexp.MustCompile(`(?i)\.(\d{4})\.`),
	regexp.MustCompile(`(?i)\s(\d{4})\s`),
}

var qualityPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d{3,4}[pi])`),
	regexp.MustCompile(`(?i)(720p|1080p|1440p|2160p|480p|360p)`),
	regexp.MustCompile(`(?i)(HD|FHD|4K|UHD|SD)`),
	regexp.MustCompile(`(?i)(BluRay|BRRip|DVDRip|WEBRip|HDTV|WEB-DL)`),
}

var resolutionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d{3,4}x\d{3,4})`),
	regexp.MustCompile(`(?i)(\d{3,4}p)`),
	regexp.MustCompile(`(?i)(720p|1080p|1440p|2160p|480p|360p)`),
}

var codecPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(x264|x265|h264|h265|HEVC|AVC|XviD|DivX)`),
	regexp.MustCompile(`(?i)(H\.264|H\.265)`),
	regexp.MustCompile(`(?i)(MPEG-4|MPEG-2)`),
}

var sourcePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(BluRay|BRRip|DVDRip|WEBRip|HDTV|WEB-DL|CAM|TS|TC|R5|SCR)`),
	regexp.MustCompile(`(?i)(Blu-ray|DVD|WEB|HDTV|TV)`),
}

// groupPatterns run against the raw stem, not the normalized one: the
// normalization pass turns the separators these anchors depend on into
// spaces, which would make a trailing -NAME tag unmatchable.
var groupPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)-([A-Za-z0-9]+)$`),
	regexp.MustCompile(`(?i)\.([A-Za-z0-9]+)$`),
	regexp.MustCompile(`(?i)\[([A-Za-z0-9]+)\]$`),
	regexp.MustCompile(`(?i)\{([A-Za-z0-9]+)\}$`),
}

// qualityNames maps an upper-cased quality match to its canonical form.
// Digit forms like 1080p are handled separately in normalizeQuality.
var qualityNames = map[string]string{
	"HD":     "720p",
	"FHD":    "1080p",
	"4K":     "2160p",
	"UHD":    "2160p",
	"SD":     "480p",
	"BLURAY": "BluRay",
	"BRRIP":  "BRRip",
	"DVDRIP": "DVDRip",
	"WEBRIP": "WEBRip",
	"HDTV":   "HDTV",
	"WEB-DL": "WEB-DL",
}

// codecNames maps an upper-cased codec match to its canonical form.
var codecNames = map[string]string{
	"X264":   "H264",
	"X265":   "H265",
	"H264":   "H264",
	"H265":   "H265",
	"H.264":  "H264",
	"H.265":  "H265",
	"HEVC":   "H265",
	"AVC":    "H264",
	"XVID":   "XviD",
	"DIVX":   "DivX",
	"MPEG-4": "MP4",
	"MPEG-2": "MP2",
}

// sourceNames maps an upper-cased source match to its canonical form.
var sourceNames = map[string]string{
	"BLURAY":  "BluRay",
	"BLU-RAY": "BluRay",
	"BRRIP":   "BRRip",
	"DVDRIP":  "DVDRip",
	"WEBRIP":  "WEBRip",
	"HDTV":    "HDTV",
	"WEB-DL":  "WEB-DL",
	"CAM":     "CAM",
	"TS":      "TS",
	"TC":      "TC",
	"R5":      "R5",
	"SCR":     "SCR",
	"DVD":     "DVDRip",
	"WEB":     "WEB-DL",
	"TV":      "HDTV",
}
