// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/studyflow/ent/account"
	"github.com/abhisek/studyflow/ent/coursecontent"
	"github.com/abhisek/studyflow/ent/llmrequestevent"
	"github.com/abhisek/studyflow/ent/performance"
	"github.com/abhisek/studyflow/ent/schema"
	"github.com/abhisek/studyflow/ent/student"
	"github.com/abhisek/studyflow/ent/weekquiz"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	accountFields := schema.Account{}.Fields()
	_ = accountFields
	// accountDescEmail is the schema descriptor for email field.
	accountDescEmail := accountFields[0].Descriptor()
	// account.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	account.EmailValidator = accountDescEmail.Validators[0].(func(string) error)
	// accountDescPasswordHash is the schema descriptor for password_hash field.
	accountDescPasswordHash := accountFields[1].Descriptor()
	// account.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	account.PasswordHashValidator = accountDescPasswordHash.Validators[0].(func(string) error)
	// accountDescTotalLogins is the schema descriptor for total_logins field.
	accountDescTotalLogins := accountFields[2].Descriptor()
	// account.DefaultTotalLogins holds the default value on creation for the total_logins field.
	account.DefaultTotalLogins = accountDescTotalLogins.Default.(int)
	// accountDescCreatedAt is the schema descriptor for created_at field.
	accountDescCreatedAt := accountFields[3].Descriptor()
	// account.DefaultCreatedAt holds the default value on creation for the created_at field.
	account.DefaultCreatedAt = accountDescCreatedAt.Default.(func() time.Time)
	coursecontentFields := schema.CourseContent{}.Fields()
	_ = coursecontentFields
	// coursecontentDescRollNo is the schema descriptor for roll_no field.
	coursecontentDescRollNo := coursecontentFields[0].Descriptor()
	// coursecontent.RollNoValidator is a validator for the "roll_no" field. It is called by the builders before save.
	coursecontent.RollNoValidator = coursecontentDescRollNo.Validators[0].(func(string) error)
	// coursecontentDescWeekNo is the schema descriptor for week_no field.
	coursecontentDescWeekNo := coursecontentFields[1].Descriptor()
	// coursecontent.WeekNoValidator is a validator for the "week_no" field. It is called by the builders before save.
	coursecontent.WeekNoValidator = coursecontentDescWeekNo.Validators[0].(func(int) error)
	// coursecontentDescCreatedAt is the schema descriptor for created_at field.
	coursecontentDescCreatedAt := coursecontentFields[3].Descriptor()
	// coursecontent.DefaultCreatedAt holds the default value on creation for the created_at field.
	coursecontent.DefaultCreatedAt = coursecontentDescCreatedAt.Default.(func() time.Time)
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescProvider is the schema descriptor for provider field.
	llmrequesteventDescProvider := llmrequesteventFields[1].Descriptor()
	// llmrequestevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	llmrequestevent.ProviderValidator = llmrequesteventDescProvider.Validators[0].(func(string) error)
	// llmrequesteventDescModel is the schema descriptor for model field.
	llmrequesteventDescModel := llmrequesteventFields[2].Descriptor()
	// llmrequestevent.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	llmrequestevent.ModelValidator = llmrequesteventDescModel.Validators[0].(func(string) error)
	// llmrequesteventDescPurpose is the schema descriptor for purpose field.
	llmrequesteventDescPurpose := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultPurpose holds the default value on creation for the purpose field.
	llmrequestevent.DefaultPurpose = llmrequesteventDescPurpose.Default.(string)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescSuccess is the schema descriptor for success field.
	llmrequesteventDescSuccess := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultSuccess holds the default value on creation for the success field.
	llmrequestevent.DefaultSuccess = llmrequesteventDescSuccess.Default.(bool)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	performanceFields := schema.Performance{}.Fields()
	_ = performanceFields
	// performanceDescRollNo is the schema descriptor for roll_no field.
	performanceDescRollNo := performanceFields[0].Descriptor()
	// performance.RollNoValidator is a validator for the "roll_no" field. It is called by the builders before save.
	performance.RollNoValidator = performanceDescRollNo.Validators[0].(func(string) error)
	// performanceDescTopicsExcellented is the schema descriptor for topics_excellented field.
	performanceDescTopicsExcellented := performanceFields[1].Descriptor()
	// performance.DefaultTopicsExcellented holds the default value on creation for the topics_excellented field.
	performance.DefaultTopicsExcellented = performanceDescTopicsExcellented.Default.(string)
	// performanceDescOutcomeOfCourse is the schema descriptor for outcome_of_course field.
	performanceDescOutcomeOfCourse := performanceFields[2].Descriptor()
	// performance.DefaultOutcomeOfCourse holds the default value on creation for the outcome_of_course field.
	performance.DefaultOutcomeOfCourse = performanceDescOutcomeOfCourse.Default.(string)
	// performanceDescStudentProgress is the schema descriptor for student_progress field.
	performanceDescStudentProgress := performanceFields[3].Descriptor()
	// performance.DefaultStudentProgress holds the default value on creation for the student_progress field.
	performance.DefaultStudentProgress = performanceDescStudentProgress.Default.(string)
	// performanceDescLastUpdated is the schema descriptor for last_updated field.
	performanceDescLastUpdated := performanceFields[4].Descriptor()
	// performance.DefaultLastUpdated holds the default value on creation for the last_updated field.
	performance.DefaultLastUpdated = performanceDescLastUpdated.Default.(func() time.Time)
	// performance.UpdateDefaultLastUpdated holds the default value on update for the last_updated field.
	performance.UpdateDefaultLastUpdated = performanceDescLastUpdated.UpdateDefault.(func() time.Time)
	studentFields := schema.Student{}.Fields()
	_ = studentFields
	// studentDescRollNo is the schema descriptor for roll_no field.
	studentDescRollNo := studentFields[0].Descriptor()
	// student.RollNoValidator is a validator for the "roll_no" field. It is called by the builders before save.
	student.RollNoValidator = studentDescRollNo.Validators[0].(func(string) error)
	// studentDescName is the schema descriptor for name field.
	studentDescName := studentFields[1].Descriptor()
	// student.NameValidator is a validator for the "name" field. It is called by the builders before save.
	student.NameValidator = studentDescName.Validators[0].(func(string) error)
	// studentDescDomain is the schema descriptor for domain field.
	studentDescDomain := studentFields[2].Descriptor()
	// student.DomainValidator is a validator for the "domain" field. It is called by the builders before save.
	student.DomainValidator = studentDescDomain.Validators[0].(func(string) error)
	// studentDescHoursPerDay is the schema descriptor for hours_per_day field.
	studentDescHoursPerDay := studentFields[3].Descriptor()
	// student.DefaultHoursPerDay holds the default value on creation for the hours_per_day field.
	student.DefaultHoursPerDay = studentDescHoursPerDay.Default.(int)
	// studentDescWeeks is the schema descriptor for weeks field.
	studentDescWeeks := studentFields[4].Descriptor()
	// student.DefaultWeeks holds the default value on creation for the weeks field.
	student.DefaultWeeks = studentDescWeeks.Default.(int)
	// studentDescKnowledgeScale is the schema descriptor for knowledge_scale field.
	studentDescKnowledgeScale := studentFields[5].Descriptor()
	// student.DefaultKnowledgeScale holds the default value on creation for the knowledge_scale field.
	student.DefaultKnowledgeScale = studentDescKnowledgeScale.Default.(int)
	// student.KnowledgeScaleValidator is a validator for the "knowledge_scale" field. It is called by the builders before save.
	student.KnowledgeScaleValidator = func() func(int) error {
		validators := studentDescKnowledgeScale.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(knowledge_scale int) error {
			for _, fn := range fns {
				if err := fn(knowledge_scale); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// studentDescCurrentWeekNo is the schema descriptor for current_week_no field.
	studentDescCurrentWeekNo := studentFields[6].Descriptor()
	// student.DefaultCurrentWeekNo holds the default value on creation for the current_week_no field.
	student.DefaultCurrentWeekNo = studentDescCurrentWeekNo.Default.(int)
	// studentDescCurrentStep is the schema descriptor for current_step field.
	studentDescCurrentStep := studentFields[7].Descriptor()
	// student.DefaultCurrentStep holds the default value on creation for the current_step field.
	student.DefaultCurrentStep = studentDescCurrentStep.Default.(int)
	// student.CurrentStepValidator is a validator for the "current_step" field. It is called by the builders before save.
	student.CurrentStepValidator = func() func(int) error {
		validators := studentDescCurrentStep.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(current_step int) error {
			for _, fn := range fns {
				if err := fn(current_step); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// studentDescCognitiveScore is the schema descriptor for cognitive_score field.
	studentDescCognitiveScore := studentFields[8].Descriptor()
	// student.DefaultCognitiveScore holds the default value on creation for the cognitive_score field.
	student.DefaultCognitiveScore = studentDescCognitiveScore.Default.(int)
	// studentDescCognitiveIq is the schema descriptor for cognitive_iq field.
	studentDescCognitiveIq := studentFields[9].Descriptor()
	// student.DefaultCognitiveIq holds the default value on creation for the cognitive_iq field.
	student.DefaultCognitiveIq = studentDescCognitiveIq.Default.(int)
	// studentDescDomainScore is the schema descriptor for domain_score field.
	studentDescDomainScore := studentFields[10].Descriptor()
	// student.DefaultDomainScore holds the default value on creation for the domain_score field.
	student.DefaultDomainScore = studentDescDomainScore.Default.(int)
	// studentDescDomainIq is the schema descriptor for domain_iq field.
	studentDescDomainIq := studentFields[11].Descriptor()
	// student.DefaultDomainIq holds the default value on creation for the domain_iq field.
	student.DefaultDomainIq = studentDescDomainIq.Default.(int)
	// studentDescVivaScore is the schema descriptor for viva_score field.
	studentDescVivaScore := studentFields[12].Descriptor()
	// student.DefaultVivaScore holds the default value on creation for the viva_score field.
	student.DefaultVivaScore = studentDescVivaScore.Default.(int)
	// studentDescVivaResponse is the schema descriptor for viva_response field.
	studentDescVivaResponse := studentFields[13].Descriptor()
	// student.DefaultVivaResponse holds the default value on creation for the viva_response field.
	student.DefaultVivaResponse = studentDescVivaResponse.Default.(string)
	// studentDescCourseConfigured is the schema descriptor for course_configured field.
	studentDescCourseConfigured := studentFields[14].Descriptor()
	// student.DefaultCourseConfigured holds the default value on creation for the course_configured field.
	student.DefaultCourseConfigured = studentDescCourseConfigured.Default.(bool)
	// studentDescCreatedAt is the schema descriptor for created_at field.
	studentDescCreatedAt := studentFields[15].Descriptor()
	// student.DefaultCreatedAt holds the default value on creation for the created_at field.
	student.DefaultCreatedAt = studentDescCreatedAt.Default.(func() time.Time)
	weekquizFields := schema.WeekQuiz{}.Fields()
	_ = weekquizFields
	// weekquizDescRollNo is the schema descriptor for roll_no field.
	weekquizDescRollNo := weekquizFields[0].Descriptor()
	// weekquiz.RollNoValidator is a validator for the "roll_no" field. It is called by the builders before save.
	weekquiz.RollNoValidator = weekquizDescRollNo.Validators[0].(func(string) error)
	// weekquizDescWeekNo is the schema descriptor for week_no field.
	weekquizDescWeekNo := weekquizFields[1].Descriptor()
	// weekquiz.WeekNoValidator is a validator for the "week_no" field. It is called by the builders before save.
	weekquiz.WeekNoValidator = weekquizDescWeekNo.Validators[0].(func(int) error)
	// weekquizDescScore is the schema descriptor for score field.
	weekquizDescScore := weekquizFields[2].Descriptor()
	// weekquiz.DefaultScore holds the default value on creation for the score field.
	weekquiz.DefaultScore = weekquizDescScore.Default.(int)
	// weekquizDescIq is the schema descriptor for iq field.
	weekquizDescIq := weekquizFields[3].Descriptor()
	// weekquiz.DefaultIq holds the default value on creation for the iq field.
	weekquiz.DefaultIq = weekquizDescIq.Default.(int)
	// weekquizDescStrongAreas is the schema descriptor for strong_areas field.
	weekquizDescStrongAreas := weekquizFields[4].Descriptor()
	// weekquiz.DefaultStrongAreas holds the default value on creation for the strong_areas field.
	weekquiz.DefaultStrongAreas = weekquizDescStrongAreas.Default.(string)
	// weekquizDescWeakAreas is the schema descriptor for weak_areas field.
	weekquizDescWeakAreas := weekquizFields[5].Descriptor()
	// weekquiz.DefaultWeakAreas holds the default value on creation for the weak_areas field.
	weekquiz.DefaultWeakAreas = weekquizDescWeakAreas.Default.(string)
	// weekquizDescAnalysis is the schema descriptor for analysis field.
	weekquizDescAnalysis := weekquizFields[6].Descriptor()
	// weekquiz.DefaultAnalysis holds the default value on creation for the analysis field.
	weekquiz.DefaultAnalysis = weekquizDescAnalysis.Default.(string)
	// weekquizDescTakenAt is the schema descriptor for taken_at field.
	weekquizDescTakenAt := weekquizFields[7].Descriptor()
	// weekquiz.DefaultTakenAt holds the default value on creation for the taken_at field.
	weekquiz.DefaultTakenAt = weekquizDescTakenAt.Default.(func() time.Time)
	// weekquiz.UpdateDefaultTakenAt holds the default value on update for the taken_at field.
	weekquiz.UpdateDefaultTakenAt = weekquizDescTakenAt.UpdateDefault.(func() time.Time)
}
