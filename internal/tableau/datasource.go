package tableau

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/samber/lo"

	"github.com/odpf/tabctl/core/analytics"
)

type pagination struct {
	PageNumber     int `json:"pageNumber,string"`
	PageSize       int `json:"pageSize,string"`
	TotalAvailable int `json:"totalAvailable,string"`
}

type datasourceItem struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ContentURL string `json:"contentUrl"`
	Type       string `json:"type"`
	UpdatedAt  string `json:"updatedAt"`
	Project    struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"project"`
}

type datasourcesResponse struct {
	Pagination  pagination `json:"pagination"`
	Datasources struct {
		Datasource []datasourceItem `json:"datasource"`
	} `json:"datasources"`
}

type jobResponse struct {
	Job struct {
		ID        string `json:"id"`
		Mode      string `json:"mode"`
		Type      string `json:"type"`
		CreatedAt string `json:"createdAt"`
	} `json:"job"`
}

// Datasources walks every page visible to the session.
func (s *session) Datasources(ctx context.Context) ([]analytics.Datasource, error) {
	var datasources []analytics.Datasource
	for page := 1; ; page++ {
		query := url.Values{}
		query.Set("pageSize", strconv.Itoa(s.client.pageSize))
		query.Set("pageNumber", strconv.Itoa(page))

		var resp datasourcesResponse
		err := s.client.invoke(ctx, request{
			method: http.MethodGet,
			url:    s.siteEndpoint("datasources") + "?" + query.Encode(),
			token:  s.token,
		}, &resp)
		if err != nil {
			return nil, err
		}

		items := resp.Datasources.Datasource
		datasources = append(datasources, lo.Map(items, func(item datasourceItem, _ int) analytics.Datasource {
			return toDatasource(item)
		})...)

		if len(items) == 0 || len(datasources) >= resp.Pagination.TotalAvailable {
			return datasources, nil
		}
	}
}

func (s *session) RefreshDatasource(ctx context.Context, datasource analytics.Datasource) (analytics.Job, error) {
	var resp jobResponse
	err := s.client.invoke(ctx, request{
		method: http.MethodPost,
		url:    s.siteEndpoint("datasources", datasource.ID, "refresh"),
		token:  s.token,
		body:   struct{}{},
	}, &resp)
	if err != nil {
		return analytics.Job{}, err
	}
	return analytics.Job{
		ID:        resp.Job.ID,
		Mode:      resp.Job.Mode,
		Type:      resp.Job.Type,
		CreatedAt: parseTimestamp(resp.Job.CreatedAt),
	}, nil
}

func toDatasource(item datasourceItem) analytics.Datasource {
	return analytics.Datasource{
		ID:          item.ID,
		Name:        item.Name,
		ContentURL:  item.ContentURL,
		Type:        item.Type,
		ProjectName: item.Project.Name,
		UpdatedAt:   parseTimestamp(item.UpdatedAt),
	}
}

func parseTimestamp(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}
	return t
}
