package engine

// SampleCategory groups demo filenames shown to users trying out templates.
type SampleCategory struct {
	Name  string   `json:"name"`
	Files []string `json:"files"`
}

// SampleFiles returns the built-in demo corpus. The filenames are fixed so
// previews over them are reproducible; they cover episodic releases, movie
// releases and non-media files that exercise the fallback paths.
func SampleFiles() []SampleCategory {
	return []SampleCategory{
		{
			Name: "TV Shows",
			Files: []string{
				"Game.of.Thrones.S01E01.1080p.BluRay.x264-GROUP.mkv",
				"Breaking.Bad.S05E14.720p.HDTV.x264-IMMERSE.mp4",
				"The.Office.US.S02E10.WEB-DL.1080p.H264.mp4",
			},
		},
		{
			Name: "Movies",
			Files: []string{
				"The.Dark.Knight.2008.1080p.BluRay.x264-SPARKS.mkv",
				"Inception.2010.720p.BRRip.x264-YIFY.mp4",
				"Avengers.Endgame.2019.4K.UHD.BluRay.x265-TERMINAL.mkv",
			},
		},
		{
			Name: "Documents",
			Files: []string{
				"Important.Document.2024.pdf",
				"Meeting.Notes.Jan.15.2024.docx",
				"Project.Report.Final.Version.pdf",
			},
		},
		{
			Name: "Audio",
			Files: []string{
				"Artist.Name.Song.Title.320kbps.mp3",
				"Album.Name.Track.01.Artist.Name.flac",
				"Podcast.Episode.123.Audio.Quality.mp3",
			},
		},
	}
}
