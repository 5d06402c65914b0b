package mail

import "fmt"

// RenderRejection builds the email sent to an applicant when a recruiter
// declines their application.
func RenderRejection(applicantName, applicantEmail, jobTitle, companyName string) Email {
	subject := fmt.Sprintf("Application Update for %s at %s", jobTitle, companyName)

	text := fmt.Sprintf(`Dear %s,

Thank you for taking the time to apply for the position of %s at %s. We appreciate your interest in our company and the effort you put into your application.

After careful consideration, we regret to inform you that we will not be moving forward with your application at this time.

We encourage you to apply for future openings that match your skills and experience.

We wish you the very best in your job search and future endeavors.

Sincerely,
%s Recruitment Team`, applicantName, jobTitle, companyName, companyName)

	html := fmt.Sprintf(`<p>Dear %s,</p>
<p>Thank you for taking the time to apply for the position of <strong>%s</strong> at <strong>%s</strong>. We appreciate your interest in our company and the effort you put into your application.</p>
<p>After careful consideration, we regret to inform you that we will not be moving forward with your application at this time.</p>
<p>We encourage you to apply for future openings that match your skills and experience.</p>
<p>We wish you the very best in your job search and future endeavors.</p>
<p>Sincerely,<br>%s Recruitment Team</p>`, applicantName, jobTitle, companyName, companyName)

	return Email{
		ToName:    applicantName,
		ToAddress: applicantEmail,
		Subject:   subject,
		Text:      text,
		HTML:      html,
	}
}

// RenderInterview builds the email sent to an applicant when a recruiter
// invites them to interview.
func RenderInterview(applicantName, applicantEmail, jobTitle, companyName string) Email {
	subject := fmt.Sprintf("Interview Invitation for %s at %s", jobTitle, companyName)

	text := fmt.Sprintf(`Dear %s,

Congratulations! You have been selected for an interview for the position of %s at %s.

Further details regarding the interview schedule and format will be shared with you shortly.

We look forward to speaking with you and learning more about your qualifications.

Sincerely,
%s Recruitment Team`, applicantName, jobTitle, companyName, companyName)

	html := fmt.Sprintf(`<p>Dear %s,</p>
<p>Congratulations! You have been selected for an interview for the position of <strong>%s</strong> at <strong>%s</strong>.</p>
<p>Further details regarding the interview schedule and format will be shared with you shortly.</p>
<p>We look forward to speaking with you and learning more about your qualifications.</p>
<p>Sincerely,<br>%s Recruitment Team</p>`, applicantName, jobTitle, companyName, companyName)

	return Email{
		ToName:    applicantName,
		ToAddress: applicantEmail,
		Subject:   subject,
		Text:      text,
		HTML:      html,
	}
}
