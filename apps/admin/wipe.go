package main

import "context"

// wipe clears all catalog collections. User data is untouched.
func (cli *commandLine) wipe() error {
	ctx := context.Background()

	if err := cli.catRepo.DeleteAllColleges(ctx); err != nil {
		return err
	}
	if err := cli.catRepo.DeleteAllCourses(ctx); err != nil {
		return err
	}
	if err := cli.catRepo.DeleteAllScholarships(ctx); err != nil {
		return err
	}
	if err := cli.catRepo.DeleteAllCareers(ctx); err != nil {
		return err
	}
	if err := cli.catRepo.DeleteAllResources(ctx); err != nil {
		return err
	}

	logger.Println("catalog collections cleared")
	return nil
}
