package services

// Services defined in this package:
// - AuthService: registration and login
// - UserService: profile and admin student listing
// - ProgramService: program catalog management
// - CourseService: course catalog management
// - EnrollmentService: program and course subscription rules
// - MessageService: student support messages
