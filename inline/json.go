package inline

import (
	"encoding/json"
	"io"

	"github.com/eztv-cli/eztv/series"
	"github.com/eztv-cli/eztv/source"
	"github.com/samber/lo"
)

type Episode struct {
	// Token is the SxxEyy form of the episode.
	Token string `json:"token"`
	*source.Episode
}

type Season struct {
	Season   int        `json:"season"`
	Episodes []*Episode `json:"episodes"`
}

type Output struct {
	Query   string    `json:"query"`
	Catalog string    `json:"catalog"`
	Seasons []*Season `json:"seasons"`
}

func asJson(query, catalog string, episodes []*source.Episode) ([]byte, error) {
	seasons := lo.Map(series.GroupBySeason(episodes), func(group []*source.Episode, _ int) *Season {
		return &Season{
			Season: group[0].Season,
			Episodes: lo.Map(group, func(e *source.Episode, _ int) *Episode {
				return &Episode{Token: e.Token(), Episode: e}
			}),
		}
	})

	return json.Marshal(&Output{
		Query:   query,
		Catalog: catalog,
		Seasons: seasons,
	})
}

func writeJson(out io.Writer, query, catalog string, episodes []*source.Episode) error {
	data, err := asJson(query, catalog, episodes)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
