package service_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"ulascansenturk/forecastio/internal/db/fetchlog"
	"ulascansenturk/forecastio/internal/forecastio"
	"ulascansenturk/forecastio/internal/mocks"
	"ulascansenturk/forecastio/internal/service"
)

const testAPIKey = "0123456789abcdef0123456789abcdef"

type ForecastServiceTestSuite struct {
	suite.Suite
	upstream *httptest.Server
	handler  http.HandlerFunc
	lastReq  *http.Request
	mockRepo *mocks.MockRepository
	service  service.ForecastService
	ctx      context.Context
}

func (s *ForecastServiceTestSuite) SetupTest() {
	s.lastReq = nil
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "max-age=3600")
		w.Header().Set("Expires", "Wed, 21 Oct 2026 07:28:00 GMT")
		w.Header().Set("X-Forecast-API-Calls", "5")
		w.Header().Set("X-Response-Time", "3ms")
		w.Write([]byte(`{"currently": {"temperature": 72}, "hourly": {"summary": "Breezy"}, "flags": {"units": "us"}}`))
	}
	s.upstream = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.lastReq = r
		s.handler(w, r)
	}))

	settings := forecastio.DefaultSettings(testAPIKey)
	settings.BaseURL = s.upstream.URL + "/forecast/"

	s.mockRepo = mocks.NewMockRepository(s.T())
	s.service = service.NewForecastService(settings, nil, s.mockRepo)
	s.ctx = context.Background()
}

func (s *ForecastServiceTestSuite) TearDownTest() {
	s.upstream.Close()
}

func (s *ForecastServiceTestSuite) TestGetForecastReturnsPresentSections() {
	s.mockRepo.On("LogFetch", mock.MatchedBy(func(f *fetchlog.Fetch) bool {
		return f.Latitude == "37.8267" &&
			f.Longitude == "-122.423" &&
			f.StatusCode == http.StatusOK &&
			f.APICalls == 5 &&
			f.Sections == "currently,hourly,flags" &&
			f.Error == ""
	})).Return(nil).Once()

	response, err := s.service.GetForecast(s.ctx, service.ForecastRequest{
		Latitude:  " 37.8267",
		Longitude: "-122.423 ",
	})

	s.Require().NoError(err)
	s.Equal("37.8267", response.Latitude)
	s.Equal("-122.423", response.Longitude)
	s.Equal(5, response.Metadata.APICalls)
	s.Equal("3ms", response.Metadata.ResponseTime)
	s.Len(response.Sections, 3)
	s.JSONEq(`{"temperature": 72}`, string(response.Sections["currently"]))
	s.NotContains(response.Sections, "daily")
}

func (s *ForecastServiceTestSuite) TestGetForecastFiltersSections() {
	s.mockRepo.On("LogFetch", mock.Anything).Return(nil).Once()

	response, err := s.service.GetForecast(s.ctx, service.ForecastRequest{
		Latitude:  "1",
		Longitude: "2",
		Sections:  []string{"hourly", "daily"},
	})

	s.Require().NoError(err)
	s.Len(response.Sections, 1)
	s.JSONEq(`{"summary": "Breezy"}`, string(response.Sections["hourly"]))
}

func (s *ForecastServiceTestSuite) TestGetForecastAppliesTimeAndExclude() {
	s.mockRepo.On("LogFetch", mock.MatchedBy(func(f *fetchlog.Fetch) bool {
		return f.Time == "255657600"
	})).Return(nil).Once()

	_, err := s.service.GetForecast(s.ctx, service.ForecastRequest{
		Latitude:  "1",
		Longitude: "2",
		Time:      "255657600",
		Exclude:   "minutely,alerts",
	})

	s.Require().NoError(err)
	s.Equal("/forecast/"+testAPIKey+"/1,2,255657600", s.lastReq.URL.Path)
	s.Equal("minutely,alerts", s.lastReq.URL.Query().Get("exclude"))
}

func (s *ForecastServiceTestSuite) TestGetForecastUnknownSection() {
	_, err := s.service.GetForecast(s.ctx, service.ForecastRequest{
		Latitude:  "1",
		Longitude: "2",
		Sections:  []string{"weekly"},
	})

	s.ErrorIs(err, service.ErrUnknownSection)
	s.Nil(s.lastReq)
	s.mockRepo.AssertNotCalled(s.T(), "LogFetch", mock.Anything)
}

func (s *ForecastServiceTestSuite) TestGetForecastInvalidCoordinate() {
	_, err := s.service.GetForecast(s.ctx, service.ForecastRequest{
		Latitude:  "north",
		Longitude: "2",
	})

	s.ErrorIs(err, forecastio.ErrInvalidCoordinate)
	s.Nil(s.lastReq)
	s.mockRepo.AssertNotCalled(s.T(), "LogFetch", mock.Anything)
}

func (s *ForecastServiceTestSuite) TestGetForecastUpstreamErrorIsLogged() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}
	s.mockRepo.On("LogFetch", mock.MatchedBy(func(f *fetchlog.Fetch) bool {
		return f.StatusCode == http.StatusForbidden && f.Error != ""
	})).Return(nil).Once()

	_, err := s.service.GetForecast(s.ctx, service.ForecastRequest{Latitude: "1", Longitude: "2"})

	s.ErrorIs(err, forecastio.ErrBadResponse)
}

func (s *ForecastServiceTestSuite) TestGetForecastSucceedsWhenLoggingFails() {
	s.mockRepo.On("LogFetch", mock.Anything).Return(errors.New("database error")).Once()

	response, err := s.service.GetForecast(s.ctx, service.ForecastRequest{Latitude: "1", Longitude: "2"})

	s.Require().NoError(err)
	s.Contains(response.Sections, "currently")
}

func (s *ForecastServiceTestSuite) TestGetForecastWithoutRepository() {
	settings := forecastio.DefaultSettings(testAPIKey)
	settings.BaseURL = s.upstream.URL
	svc := service.NewForecastService(settings, &http.Client{}, nil)

	response, err := svc.GetForecast(s.ctx, service.ForecastRequest{Latitude: "1", Longitude: "2"})

	s.Require().NoError(err)
	s.Contains(response.Sections, "flags")
}

func TestForecastServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ForecastServiceTestSuite))
}
