package service

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/cinelog/cinelog-backend/internal/app/model"
	"github.com/cinelog/cinelog-backend/internal/app/repository"
	"github.com/cinelog/cinelog-backend/pkg/logger"
)

type ExportService interface {
	ExportMovies() (*bytes.Buffer, string, error)
}

type exportService struct {
	movieRepo repository.MovieRepository
}

func NewExportService(movieRepo repository.MovieRepository) ExportService {
	return &exportService{movieRepo: movieRepo}
}

var movieExportHeader = []string{
	"ID", "Name", "URL", "Category", "Release Date",
	"Likes", "Dislikes", "Reviews", "Average Score",
}

// ExportMovies renders the whole catalog as an XLSX workbook and returns
// the file content together with a dated filename.
func (s *exportService) ExportMovies() (*bytes.Buffer, string, error) {
	movies, err := s.movieRepo.ListAll()
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Movies"
	f.SetSheetName(f.GetSheetName(0), sheet)

	for col, title := range movieExportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, "", err
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, "", err
		}
	}

	for i, movie := range movies {
		row := i + 2
		if err := s.writeMovieRow(f, sheet, row, movie); err != nil {
			return nil, "", err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("movies-%s.xlsx", time.Now().Format("2006-01-02"))
	logger.Info("movie export generated", map[string]interface{}{
		"movies":   len(movies),
		"filename": filename,
	})
	return buf, filename, nil
}

func (s *exportService) writeMovieRow(f *excelize.File, sheet string, row int, movie model.Movie) error {
	categoryName := ""
	if movie.Category != nil {
		categoryName = movie.Category.Name
	}
	releaseDate := ""
	if movie.ReleaseDate != nil {
		releaseDate = movie.ReleaseDate.Format("2006-01-02")
	}
	averageScore := ""
	if resp := movie.ToResponse(); resp.AverageScore != nil {
		averageScore = *resp.AverageScore
	}

	values := []interface{}{
		movie.ID, movie.Name, movie.URL, categoryName, releaseDate,
		derefCount(movie.LikeCount), derefCount(movie.DislikeCount),
		derefCount(movie.ReviewCount), averageScore,
	}
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return err
		}
	}
	return nil
}

func derefCount(n *int64) int64 {
	if n == nil {
		return 0
	}
	return *n
}
