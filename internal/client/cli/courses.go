package cli

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/coursehub/internal/client/client"
	"github.com/dmitrijs2005/coursehub/internal/client/models"
	"github.com/dmitrijs2005/coursehub/internal/client/services"
)

// signedOut clears the prompt's email after the server rejected the session.
func (a *App) signedOut(err error) error {
	if errors.Is(err, client.ErrUnauthorized) || errors.Is(err, services.ErrNotLoggedIn) {
		a.setEmail("")
		return fmt.Errorf("%w, please log in", err)
	}
	return err
}

func (a *App) Me(ctx context.Context) error {
	user, err := a.courseService.Profile(ctx)
	if err != nil {
		return a.signedOut(err)
	}

	fmt.Fprintf(a.out, "%s %s <%s>\n", user.FirstName, user.LastName, user.Email)
	fmt.Fprintf(a.out, "Member since %s, %d course(s)\n", user.CreatedAt.Format(time.DateOnly), len(user.EnrolledCourses))
	return nil
}

func (a *App) Courses(ctx context.Context) error {
	courses, err := a.courseService.Courses(ctx)
	if err != nil {
		return a.signedOut(err)
	}
	a.printCourses(courses)
	return nil
}

func (a *App) Enroll(ctx context.Context, courseID, title string) error {
	courses, err := a.courseService.Enroll(ctx, courseID, title)
	if err != nil {
		return a.signedOut(err)
	}
	fmt.Fprintln(a.out, "Course enrolled successfully")
	a.printCourses(courses)
	return nil
}

func (a *App) Unenroll(ctx context.Context, courseID string) error {
	if err := a.courseService.Unenroll(ctx, courseID); err != nil {
		return a.signedOut(err)
	}
	fmt.Fprintln(a.out, "Course unenrolled successfully")
	return nil
}

func (a *App) Tutors(ctx context.Context) error {
	tutors, err := a.courseService.Tutors(ctx)
	if err != nil {
		return err
	}
	if len(tutors) == 0 {
		fmt.Fprintln(a.out, "No tutors yet")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSUBJECT\tBIO")
	for _, t := range tutors {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", t.Name, t.Subject, t.Bio)
	}
	return tw.Flush()
}

func (a *App) Ratings(ctx context.Context) error {
	ratings, err := a.courseService.Ratings(ctx)
	if err != nil {
		return err
	}
	if len(ratings) == 0 {
		fmt.Fprintln(a.out, "No ratings yet")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RATING\tNAME\tCOMMENT")
	for _, r := range ratings {
		fmt.Fprintf(tw, "%d/5\t%s\t%s\n", r.Score, r.Name, r.Comment)
	}
	return tw.Flush()
}

func (a *App) printCourses(courses []models.EnrolledCourse) {
	if len(courses) == 0 {
		fmt.Fprintln(a.out, "No enrolled courses")
		return
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "COURSE\tTITLE\tENROLLED")
	for _, c := range courses {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", c.CourseID, c.Title, c.EnrolledAt.Local().Format(time.DateTime))
	}
	_ = tw.Flush()
}
