// File: services/chat/responses.go
package chat

import (
	"fmt"

	"veritek/models"
)

// All reply text lives here so the intent table in rules.go stays readable.
// Replies use the restricted markdown subset understood by FormatResponse.

const welcomeResponse = "Hello! I'm the **Veritek Controls** assistant. I can point you to the " +
	"right service page or put you in touch with our engineers. Ask me about " +
	"*automation*, *machine safety*, *control system design*, *panel building* " +
	"or *safety training* - or just say what you need help with."

const greetingResponse = "Hi there! Welcome to **Veritek Controls**. Tell me what you need help " +
	"with and I'll point you to the right place - automation, machine safety, " +
	"control system design, panel building or safety training."

const resetResponse = "No problem, let's start over. Tell me what you need help with, or ask " +
	"about **automation**, **machine safety**, **control system design**, " +
	"**panel building** or **safety training**."

const discoveryMenuResponse = "Happy to help you find the right service. Which of these fits best?\n" +
	"1. **Industrial Automation** - PLC, SCADA/HMI and robotics\n" +
	"2. **Machine Safety** - risk assessments, guarding, lockout/tagout\n" +
	"3. **Control System Design** - electrical and controls engineering\n" +
	"4. **Panel Building** - UL 508A control panels\n" +
	"5. **Safety Training** - courses and certification\n" +
	"6. Not sure yet - talk to an engineer\n" +
	"Reply with a number or a keyword."

const automationSelectedResponse = "Great choice. Our **Industrial Automation** team handles PLC " +
	"programming, SCADA/HMI development and robotic cells end to end - see " +
	"[Automation Services](automation.html). Which industry are you in: " +
	"pharmaceutical, automotive, or food & beverage?"

const safetySelectedResponse = "Our **Machine Safety** group performs risk assessments, designs " +
	"guarding and builds lockout/tagout programs - see " +
	"[Machine Safety](safety.html). Which industry are you in: " +
	"pharmaceutical, automotive, or food & beverage?"

const designSelectedResponse = "Our **Control System Design** engineers take projects from " +
	"specification through commissioned schematics - see " +
	"[Control System Design](design.html). Which industry are you in: " +
	"pharmaceutical, automotive, or food & beverage?"

const panelSelectedResponse = "Our **Panel Building** shop produces UL 508A listed control " +
	"panels, from single enclosures to full production lines - see " +
	"[Panel Building](panel.html). Which industry are you in: " +
	"pharmaceutical, automotive, or food & beverage?"

const trainingSelectedResponse = "Our **Safety Training** program offers hands-on courses with " +
	"certification, on site or at our facility - see " +
	"[Safety Training](training.html). Which industry are you in: " +
	"pharmaceutical, automotive, or food & beverage?"

const unsureResponse = "No problem - our engineers can scope it with you. " +
	"[Request a consultation](contact.html?dept=engineering&type=consultation) " +
	"or call [+1-800-555-0142](tel:+18005550142)."

// Industry refinements close the funnel with a deep link carrying the chosen
// category and industry into the contact form.

func industryContactURL(st *models.ConversationState, industry models.Industry) string {
	return ContactLink{
		Department: "sales",
		Service:    string(st.Category),
		Industry:   string(industry),
		Type:       "project",
	}.URL()
}

func pharmaResponse(st *models.ConversationState) string {
	return fmt.Sprintf("**Pharmaceutical** plants are a core focus for us - we deliver GAMP 5 "+
		"aligned systems with full validation documentation. "+
		"[Tell us about your project](%s) and a pharma specialist will follow up "+
		"within one business day.", industryContactURL(st, models.IndustryPharmaceutical))
}

func automotiveResponse(st *models.ConversationState) string {
	return fmt.Sprintf("We've supported **Automotive** plants for over two decades, from body "+
		"shop robotics to end-of-line test stands. "+
		"[Tell us about your project](%s) and an automotive specialist will "+
		"follow up within one business day.", industryContactURL(st, models.IndustryAutomotive))
}

func foodResponse(st *models.ConversationState) string {
	return fmt.Sprintf("**Food & Beverage** lines demand washdown-rated, hygienic designs - "+
		"that's our bread and butter. [Tell us about your project](%s) and a "+
		"food & beverage specialist will follow up within one business day.",
		industryContactURL(st, models.IndustryFood))
}

// Flat topic fallbacks for visitors who skip the discovery funnel.

const automationTopicResponse = "Our **Industrial Automation** group delivers PLC programming, " +
	"SCADA/HMI systems and robotic integration for plants of every size. " +
	"Read more at [Automation Services](automation.html) or " +
	"[request a quote](contact.html?dept=sales&service=automation&type=quote)."

const safetyTopicResponse = "Our **Machine Safety** group performs risk assessments to ISO 12100, " +
	"designs and installs guarding, and builds lockout/tagout programs. " +
	"Read more at [Machine Safety](safety.html) or " +
	"[request an assessment](contact.html?dept=sales&service=safety&type=assessment)."

const designTopicResponse = "Our **Control System Design** engineers produce electrical " +
	"schematics, controls architecture and commissioning support. " +
	"Read more at [Control System Design](design.html) or " +
	"[start a design review](contact.html?dept=sales&service=design&type=quote)."

const panelTopicResponse = "Our **Panel Building** shop is UL 508A certified and builds control " +
	"panels from single enclosures to complete line builds. " +
	"Read more at [Panel Building](panel.html) or " +
	"[request a quote](contact.html?dept=sales&service=panel&type=quote)."

const trainingTopicResponse = "Our **Safety Training** courses cover machine safety standards, " +
	"lockout/tagout and arc flash, with certification on completion. Browse the " +
	"catalog at [Safety Training](training.html) or " +
	"[ask about a private class](contact.html?dept=training&service=training&type=inquiry)."

const quoteResponse = "Every project is scoped individually, so pricing starts with a short " +
	"conversation. [Request a quote](contact.html?dept=sales&type=quote) and " +
	"we'll respond within one business day."

const contactResponse = "You can reach us through the [contact page](contact.html), call " +
	"[+1-800-555-0142](tel:+18005550142), or email " +
	"[info@veritekcontrols.com](mailto:info@veritekcontrols.com)."

const complaintResponse = "I'm sorry to hear that - that's not the experience we want you to " +
	"have. Our support team will make it right: " +
	"[open a support request](contact.html?dept=support&type=complaint) or call " +
	"[+1-800-555-0142](tel:+18005550142) and mention this conversation."

const defaultResponse = "I'm not sure I caught that. I can help with **automation**, **machine " +
	"safety**, **control system design**, **panel building** or **safety " +
	"training** - or say *help* and I'll walk you through the options. You can " +
	"always [reach our team directly](contact.html)."

// fallbackResponse replaces the reply when session storage fails mid-turn.
// The failure is terminal for that turn only; the next message starts fresh.
const fallbackResponse = "Sorry - something went wrong on our end. Please call us at " +
	"[+1-800-555-0142](tel:+18005550142) or email " +
	"[info@veritekcontrols.com](mailto:info@veritekcontrols.com) and we'll " +
	"help right away."
