package scanner

import (
	"database/sql"

	"github.com/lib/pq"
	model "github.com/tony-montemuro/smb-website-sub002/internal/models"
	"github.com/tony-montemuro/smb-website-sub002/internal/utils"
)

// rowScanner couvre pgx.Row et pgx.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// ScanProfile scanne une ligne SQL vers un Profile
// Utilise les types sql.Null* et les convertit automatiquement
func ScanProfile(scanner rowScanner) (*model.Profile, error) {
	var p model.Profile
	var country, avatar, bio, youtube, twitch sql.NullString

	err := scanner.Scan(
		&p.ID, &p.Username, &country, &avatar, &bio,
		&youtube, &twitch, &p.Moderator, &p.JoinDate,
	)
	if err != nil {
		return nil, err
	}

	// Conversions
	p.Country = utils.NullStringToString(country)
	p.Avatar = utils.NullStringToString(avatar)
	p.Bio = utils.NullStringToString(bio)
	p.YoutubeURL = utils.NullStringToString(youtube)
	p.TwitchURL = utils.NullStringToString(twitch)

	return &p, nil
}

// ScanRawSubmission scanne une ligne des tables score_submissions ou
// time_submissions vers la forme brute attendue par le normaliseur. Les
// colonnes profil et niveau viennent de LEFT JOIN: une référence cassée
// donne des champs NULL que le normaliseur écartera
func ScanRawSubmission(scanner rowScanner, rt model.RecordType) (*model.RawSubmission, error) {
	var raw model.RawSubmission
	var record sql.NullFloat64
	var profileID, username, country, avatar sql.NullString
	var levelID, levelName, chart sql.NullString
	var misc sql.NullBool
	var levelPos sql.NullInt64
	var parTime sql.NullFloat64
	var proof, comment, monkey, platform, region sql.NullString

	err := scanner.Scan(
		&raw.ID, &record, &raw.SubmittedAt, &raw.Live, &raw.Approved,
		&proof, &comment, &monkey, &platform, &region, &raw.TAS,
		&profileID, &username, &country, &avatar,
		&levelID, &levelName, &misc, &chart, &parTime, &levelPos,
	)
	if err != nil {
		return nil, err
	}

	if profileID.Valid {
		raw.Profile = &model.Profile{
			ID:       profileID.String,
			Username: utils.NullStringToString(username),
			Country:  utils.NullStringToString(country),
			Avatar:   utils.NullStringToString(avatar),
		}
	}
	if levelID.Valid {
		raw.Level = &model.Level{
			ID:      levelID.String,
			Name:    utils.NullStringToString(levelName),
			Misc:    utils.NullBoolToBool(misc),
			Chart:   model.ChartType(utils.NullStringToString(chart)),
			ParTime: utils.NullFloat64ToFloat64(parTime),
		}
		if levelPos.Valid {
			raw.Level.Position = int(levelPos.Int64)
		}
	}

	if record.Valid {
		if rt == model.Score {
			raw.Score = utils.NullFloat64ToPointer(record)
		} else {
			raw.Time = utils.NullFloat64ToPointer(record)
		}
	}

	raw.Proof = utils.NullStringToString(proof)
	raw.Comment = utils.NullStringToString(comment)
	raw.Monkey = utils.NullStringToString(monkey)
	raw.Platform = utils.NullStringToString(platform)
	raw.Region = utils.NullStringToString(region)

	return &raw, nil
}

// ScanGame scanne une ligne SQL vers un Game avec pq.Array pour les listes de tags
func ScanGame(scanner rowScanner) (*model.Game, error) {
	var g model.Game
	var boxArt, release sql.NullString

	err := scanner.Scan(
		&g.Abb, &g.Name, &g.Custom, &boxArt, &release,
		pq.Array(&g.Monkeys), pq.Array(&g.Platforms), pq.Array(&g.Regions),
	)
	if err != nil {
		return nil, err
	}

	g.BoxArt = utils.NullStringToString(boxArt)
	g.Release = utils.NullStringToString(release)

	return &g, nil
}

// ScanCategory scanne une ligne SQL vers une Category
func ScanCategory(scanner rowScanner) (*model.Category, error) {
	var c model.Category

	err := scanner.Scan(
		&c.ID, &c.GameAbb, &c.Name,
		&c.AscendingScore, &c.AscendingTime, &c.Practice,
	)
	if err != nil {
		return nil, err
	}

	return &c, nil
}

// ScanLevel scanne une ligne SQL vers un Level
func ScanLevel(scanner rowScanner) (*model.Level, error) {
	var l model.Level
	var parTime sql.NullFloat64

	err := scanner.Scan(
		&l.ID, &l.Name, &l.GameAbb, &l.Category,
		&l.Misc, &l.Chart, &parTime, &l.Position,
	)
	if err != nil {
		return nil, err
	}

	l.ParTime = utils.NullFloat64ToFloat64(parTime)

	return &l, nil
}

// ScanNotification scanne une ligne SQL vers une Notification
func ScanNotification(scanner rowScanner) (*model.Notification, error) {
	var n model.Notification
	var submissionID, message sql.NullString

	err := scanner.Scan(
		&n.ID, &n.ProfileID, &submissionID, &n.Type, &message, &n.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	n.SubmissionID = utils.NullStringToString(submissionID)
	n.Message = utils.NullStringToString(message)

	return &n, nil
}
