package repository

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cinelog/cinelog-backend/internal/app/model"
	"github.com/cinelog/cinelog-backend/internal/app/query"
)

func birthDate(year int) *time.Time {
	d := time.Date(year, 6, 1, 0, 0, 0, 0, time.UTC)
	return &d
}

func TestPersonRepositoryList(t *testing.T) {
	database := setupDB(t)
	repo := NewPersonRepository(database)

	director := model.Person{Name: "Ada Vale", URL: "ada-vale", IsMale: false, BirthDate: birthDate(1960)}
	require.NoError(t, database.Create(&director).Error)
	lead := model.Person{Name: "Ben Ochre", URL: "ben-ochre", IsMale: true, BirthDate: birthDate(1990)}
	require.NoError(t, database.Create(&lead).Error)
	extra := model.Person{Name: "Cy Quartz", URL: "cy-quartz", IsMale: true, BirthDate: birthDate(1975)}
	require.NoError(t, database.Create(&extra).Error)

	fan := seedUser(t, database, "fan")
	require.NoError(t, repo.CreateFollowing(&model.Following{UserID: fan.ID, PersonID: lead.ID}))

	listNames := func(t *testing.T, rawQuery string) []string {
		t.Helper()
		values, err := url.ParseQuery(rawQuery)
		require.NoError(t, err)
		people, _, err := repo.List(query.ParamsFromValues(values))
		require.NoError(t, err)
		names := make([]string, 0, len(people))
		for _, p := range people {
			names = append(names, p.Name)
		}
		return names
	}

	t.Run("filter by gender token", func(t *testing.T) {
		assert.Equal(t, []string{"Ada Vale"}, listNames(t, "gender=female"))
		assert.Len(t, listNames(t, "gender=male"), 2)
	})

	t.Run("unrecognized gender token is ignored", func(t *testing.T) {
		assert.Len(t, listNames(t, "gender=unknown"), 3)
	})

	t.Run("filter by follower count", func(t *testing.T) {
		assert.Equal(t, []string{"Ben Ochre"}, listNames(t, "followers_count=1"))
	})

	t.Run("sort youngest first by birth date", func(t *testing.T) {
		assert.Equal(t, []string{"Ben Ochre", "Cy Quartz", "Ada Vale"}, listNames(t, "sort=youngest"))
	})

	t.Run("sort oldest first by birth date", func(t *testing.T) {
		assert.Equal(t, []string{"Ada Vale", "Cy Quartz", "Ben Ochre"}, listNames(t, "sort=oldest"))
	})

	t.Run("sort by most followers", func(t *testing.T) {
		assert.Equal(t, "Ben Ochre", listNames(t, "sort=most-followers")[0])
	})

	t.Run("list rows carry follower counts", func(t *testing.T) {
		values, _ := url.ParseQuery("url=ben-ochre")
		people, _, err := repo.List(query.ParamsFromValues(values))
		require.NoError(t, err)
		require.Len(t, people, 1)
		require.NotNil(t, people[0].FollowerCount)
		assert.EqualValues(t, 1, *people[0].FollowerCount)
	})
}

func TestPersonRepositoryFollowings(t *testing.T) {
	database := setupDB(t)
	repo := NewPersonRepository(database)

	person := seedPerson(t, database, "Ada Vale", "ada-vale")
	fan := seedUser(t, database, "fan")

	require.NoError(t, repo.CreateFollowing(&model.Following{UserID: fan.ID, PersonID: person.ID}))

	t.Run("second follow hits the unique index", func(t *testing.T) {
		err := repo.CreateFollowing(&model.Following{UserID: fan.ID, PersonID: person.ID})
		assert.Error(t, err)
	})

	t.Run("listing preloads the person", func(t *testing.T) {
		followings, total, err := repo.ListFollowings(fan.ID, query.Pagination{Page: 1, PerPage: 10})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, followings, 1)
		require.NotNil(t, followings[0].Person)
		assert.Equal(t, "Ada Vale", followings[0].Person.Name)
	})

	t.Run("unfollowing twice reports not found", func(t *testing.T) {
		require.NoError(t, repo.DeleteFollowing(fan.ID, person.ID))
		err := repo.DeleteFollowing(fan.ID, person.ID)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}
