package library

import (
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/soundctl/mak/internal/models"
)

// nearMissDistance is the levenshtein threshold under which two differing
// field values are treated as the same value with a typo.
const nearMissDistance = 2

// TrackHealth grades a single track's tag completeness. Missing title or
// artist is red; missing album, track number, or artwork is amber.
func TrackHealth(t models.Track) models.TrackHealth {
	health := models.TrackHealth{Status: models.HealthGreen, Issues: []string{}}

	flag := func(status models.HealthStatus, issue string) {
		health.Status = health.Status.Worst(status)
		health.Issues = append(health.Issues, issue)
	}

	if strings.TrimSpace(t.Title) == "" {
		flag(models.HealthRed, "missing title")
	}
	if strings.TrimSpace(t.Artist) == "" {
		flag(models.HealthRed, "missing artist")
	}
	if strings.TrimSpace(t.Album) == "" {
		flag(models.HealthAmber, "missing album")
	}
	if t.TrackNumber == 0 {
		flag(models.HealthAmber, "missing track number")
	}
	if !t.HasArtwork {
		flag(models.HealthAmber, "missing artwork")
	}

	return health
}

// AlbumHealth grades every track and checks album-wide field consistency.
// Overall is the worst track status, bumped to at least amber when a
// consistency check fails outright.
func AlbumHealth(a *Album) models.AlbumHealth {
	health := models.AlbumHealth{
		Overall:     models.HealthGreen,
		Consistency: map[string]models.FieldConsistency{},
		Tracks:      map[string]models.TrackHealth{},
	}

	var albums, albumArtists, genres []string
	for _, name := range a.TrackNames() {
		track, _ := a.Track(name)
		th := TrackHealth(track)
		health.Tracks[name] = th
		health.Overall = health.Overall.Worst(th.Status)

		albums = append(albums, track.Album)
		albumArtists = append(albumArtists, albumArtistOf(track))
		genres = append(genres, track.Genre)
	}

	health.Consistency["album"] = fieldConsistency(albums)
	health.Consistency["album_artist"] = fieldConsistency(albumArtists)
	health.Consistency["genre"] = fieldConsistency(genres)

	for _, c := range health.Consistency {
		if !c.Consistent {
			health.Overall = health.Overall.Worst(models.HealthAmber)
		}
	}

	return health
}

func albumArtistOf(t models.Track) string {
	if t.AlbumArtist != "" {
		return t.AlbumArtist
	}
	return t.Artist
}

// fieldConsistency reports whether all values agree. Values within
// nearMissDistance edits of each other count as consistent but are flagged
// as near misses so the UI can surface probable typos.
func fieldConsistency(values []string) models.FieldConsistency {
	distinct := []string{}
	seen := map[string]bool{}
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		distinct = append(distinct, v)
	}

	switch len(distinct) {
	case 0, 1:
		return models.FieldConsistency{Consistent: true}
	}

	nearMiss := true
	for i := 1; i < len(distinct); i++ {
		d := levenshtein.ComputeDistance(strings.ToLower(distinct[0]), strings.ToLower(distinct[i]))
		if d > nearMissDistance {
			nearMiss = false
			break
		}
	}

	return models.FieldConsistency{
		Consistent: nearMiss,
		NearMiss:   nearMiss,
		Values:     distinct,
	}
}
